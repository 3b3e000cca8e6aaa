package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func TestToPlanResponse(t *testing.T) {
	plan := &entity.ShootingPlan{
		ID:          "plan-1",
		ProjectID:   "p1",
		Mode:        entity.PlanModeDeterministic,
		Strategy:    "location",
		TargetHours: 10,
		Status:      entity.PlanStatusGenerated,
		Days: []entity.ShootingDay{
			{
				DayNumber:      1,
				LocationLabel:  "KITCHEN",
				TimeOfDay:      entity.TimeOfDayDay,
				TotalEighths:   6,
				EstimatedHours: 4.5,
				TargetHours:    10,
				Scenes: []entity.PlannedScene{
					{SceneID: "S1", SeqNum: 1, TimeOfDay: entity.TimeOfDayDay},
				},
				Warnings: []string{"警告一", "警告二"},
			},
			{
				DayNumber:     2,
				LocationLabel: "ALLEY",
				TimeOfDay:     entity.TimeOfDayNight,
				TargetHours:   10,
			},
		},
	}

	resp := ToPlanResponse(plan)
	require.NotNil(t, resp)

	assert.Equal(t, "plan-1", resp.ID)
	assert.Equal(t, "deterministic", resp.Mode)
	assert.Equal(t, 2, resp.TotalDays)
	assert.Equal(t, 2, resp.TotalWarnings)

	require.Len(t, resp.Days, 2)
	// 警告以分号连接成展示串，同时保留原始列表
	assert.Equal(t, "警告一; 警告二", resp.Days[0].Warnings)
	assert.Equal(t, []string{"警告一", "警告二"}, resp.Days[0].Alerts)
	assert.Empty(t, resp.Days[1].Warnings)

	require.Len(t, resp.Days[0].Scenes, 1)
	assert.Equal(t, "S1", resp.Days[0].Scenes[0].SceneID)
}

func TestToPlanResponseNil(t *testing.T) {
	assert.Nil(t, ToPlanResponse(nil))
}
