package aiplan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func TestBuildPlanRequest(t *testing.T) {
	project := &entity.Project{ID: "p1", ProductionType: "feature"}
	scenes := []*entity.Scene{
		{
			ID:         "S1",
			ProjectID:  "p1",
			SeqNum:     1,
			Title:      "INT. KITCHEN - DAY",
			TimeOfDay:  entity.TimeOfDayDay,
			Eighths:    2,
			Characters: []string{"ALICE", "BO"},
		},
		{
			ID:        "S2",
			ProjectID: "p1",
			SeqNum:    2,
			Title:     "EXT. ALLEY - NIGHT",
			TimeOfDay: entity.TimeOfDayNight,
			Eighths:   4,
			Factors: &entity.ComplexityFactors{
				MinorsPresent:  true,
				CharacterCount: 1,
			},
			Characters: []string{"ALICE"},
		},
	}
	locations := []*entity.Location{
		{ID: "loc-kitchen", Name: "KITCHEN", Zone: "studio"},
		{ID: "loc-alley", Name: "ALLEY", Zone: "downtown"},
	}
	characters := []*entity.Character{
		{Name: "ALICE", IsMinor: false},
		{Name: "BO", IsMinor: true},
		{Name: "CHEN", IsMinor: false},
	}
	distances := []*entity.DistanceEntry{
		{FromLocationID: "loc-kitchen", ToLocationID: "loc-alley", DurationMin: 30},
		// 反向重复条目应被去掉
		{FromLocationID: "loc-alley", ToLocationID: "loc-kitchen", DurationMin: 35},
	}

	req := BuildPlanRequest(project, scenes, locations, characters, distances, 10, 0, true)

	assert.Equal(t, "p1", req.ProjectID)
	assert.Equal(t, 10.0, req.TargetHours)
	assert.True(t, req.DayNightSeparation)

	require.Len(t, req.Scenes, 2)
	// 预估分钟随场次下发
	assert.Equal(t, 30, req.Scenes[0].SetupMinutes)
	assert.Equal(t, 31, req.Scenes[0].ShootingMinutes)
	assert.Equal(t, "KITCHEN", req.Scenes[0].LocationName)
	assert.True(t, req.Scenes[1].MinorsPresent)

	// 出场次数按场次角色表统计
	require.Len(t, req.Characters, 3)
	byName := map[string]CharacterItem{}
	for _, c := range req.Characters {
		byName[c.Name] = c
	}
	assert.Equal(t, 2, byName["ALICE"].SceneCount)
	assert.Equal(t, 1, byName["BO"].SceneCount)
	assert.True(t, byName["BO"].IsMinor)
	assert.Equal(t, 0, byName["CHEN"].SceneCount)

	// 无向去重只保留先出现的条目
	require.Len(t, req.Distances, 1)
	assert.Equal(t, 30, req.Distances[0].DurationMin)
}

func TestPlanRequestMarshalJSONString(t *testing.T) {
	req := &PlanRequest{ProjectID: "p1", TargetHours: 10}
	s, err := req.MarshalJSONString()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &decoded))
	assert.Equal(t, "p1", decoded["project_id"])
}
