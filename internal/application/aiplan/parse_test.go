package aiplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "cineplan-api/pkg/errors"
)

func TestParsePlanOutputDirect(t *testing.T) {
	raw := `{"days":[{"day_number":1,"scene_ids":["s1","s2"]}],"summary":"两场一天"}`

	plan, err := ParsePlanOutput(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, []string{"s1", "s2"}, plan.Days[0].SceneIDs)
	assert.Equal(t, "两场一天", plan.Summary)
}

func TestParsePlanOutputMarkdownFences(t *testing.T) {
	raw := "```json\n{\"days\":[{\"day_number\":1,\"scene_ids\":[\"s1\"]}]}\n```"

	plan, err := ParsePlanOutput(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, []string{"s1"}, plan.Days[0].SceneIDs)
}

func TestParsePlanOutputBraceExtraction(t *testing.T) {
	raw := "好的，以下是编排结果：\n{\"days\":[{\"day_number\":1,\"scene_ids\":[\"s1\"]}]}\n如需调整请告知。"

	plan, err := ParsePlanOutput(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
}

func TestParsePlanOutputUnparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "完全不是 JSON", "{\"days\": [unclosed"} {
		_, err := ParsePlanOutput(raw)
		require.Error(t, err, "raw=%q", raw)
		appErr := pkgerrors.AsAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodePlanParseFailed, appErr.Code)
	}
}

func TestParsePlanOutputNoDays(t *testing.T) {
	_, err := ParsePlanOutput(`{"days":[],"summary":"空"}`)
	require.Error(t, err)
}
