package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainplan/internal/model"
)

func TestGenerateReportListsLinks(t *testing.T) {
	c, err := Build([]string{"a.plan", "b.plan", "a.plan"}, "out.plan")
	require.NoError(t, err)

	report := GenerateReport(c, false)
	assert.Contains(t, report, `Chain of 3 plans from pattern "out.plan"`)
	assert.Contains(t, report, "Distinct input files: 2")
	assert.Contains(t, report, "out_0000.plan")
	assert.Contains(t, report, model.IconLink+" out_0001.plan")
	assert.Contains(t, report, model.IconTerminal+" (end of chain)")
	assert.Contains(t, report, "a.plan "+model.IconRepeat)
	assert.NotContains(t, report, "DIRECTIVE")
}

func TestGenerateReportVerboseShowsDirectives(t *testing.T) {
	c, err := Build([]string{"a.plan", "b.plan"}, "out.plan")
	require.NoError(t, err)

	report := GenerateReport(c, true)
	lines := strings.Split(strings.TrimSpace(report), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	assert.Contains(t, report, "DIRECTIVE")
	assert.Contains(t, lines[len(lines)-2], "#chain out_0001.plan")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "-"))
}

func TestSummary(t *testing.T) {
	c, err := Build([]string{"a.plan", "b.plan"}, "out.plan")
	require.NoError(t, err)

	got := Summary(Result{Chain: c, Written: 2})
	assert.Equal(t, "Chained 2 plans into out_0000.plan "+model.IconLink+" out_0001.plan", got)
}
