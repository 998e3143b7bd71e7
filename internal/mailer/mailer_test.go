package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportBody(t *testing.T) {
	body, err := buildReportBody("Acme Corp", 72, "a-1", "https://check.example.com")
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Acme Corp,")
	assert.Contains(t, body, "Security Score: 72%")
	assert.Contains(t, body, "https://check.example.com/api/v1/assessments/a-1/report.html")
	assert.Contains(t, body, "width: 72%")
}

func TestBuildReportBodyEscapesCompanyName(t *testing.T) {
	body, err := buildReportBody(`<b onclick="x">Evil</b>`, 50, "a-1", "http://localhost")
	require.NoError(t, err)
	assert.NotContains(t, body, `<b onclick=`)
}

func TestScoreColorTiers(t *testing.T) {
	assert.Equal(t, "#10b981", scoreColor(80))
	assert.Equal(t, "#3b82f6", scoreColor(60))
	assert.Equal(t, "#f59e0b", scoreColor(40))
	assert.Equal(t, "#ef4444", scoreColor(39))
}

func TestDisabledMailer(t *testing.T) {
	m := New("", 587, "", "", "reports@gocybercheck.com", "http://localhost")
	assert.False(t, m.Enabled())
	assert.Error(t, m.SendReport("sec@acme.test", "Acme Corp", 72, "a-1"))
}
