package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

// htmlData wraps a Report with values precomputed for the template.
type htmlData struct {
	*Report
	ScoreDegrees float64
	TierLabel    string
}

var htmlFuncs = template.FuncMap{
	"statusClass": func(status string) string {
		if status == statusCompliant {
			return "compliant"
		}
		return "gaps"
	},
}

var reportTemplate = template.Must(
	template.New("report").Funcs(sprig.HtmlFuncMap()).Funcs(htmlFuncs).Parse(reportTemplateHTML),
)

// RenderHTML serializes a composed report as a standalone printable HTML
// document. It is a pure function of the report data.
func RenderHTML(rep *Report) ([]byte, error) {
	data := htmlData{
		Report:       rep,
		ScoreDegrees: float64(rep.OverallScore) * 3.6,
		TierLabel:    ScoreTier(rep.OverallScore),
	}
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Cybersecurity Assessment Report - {{ .CompanyName }}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #374151; background: white; }
.container { max-width: 800px; margin: 0 auto; padding: 40px 20px; }
.header { text-align: center; border-bottom: 3px solid #6366f1; padding-bottom: 30px; margin-bottom: 40px; }
.logo { font-size: 32px; font-weight: bold; color: #6366f1; margin-bottom: 10px; }
.company-name { font-size: 24px; color: #1f2937; margin-bottom: 10px; }
.date { color: #6b7280; font-size: 14px; }
.score-section { background: #f8fafc; padding: 30px; border-radius: 12px; text-align: center; margin-bottom: 40px; }
.score-circle { width: 120px; height: 120px; border-radius: 50%; background: conic-gradient(#6366f1 {{ printf "%.1f" .ScoreDegrees }}deg, #e5e7eb 0deg); display: flex; align-items: center; justify-content: center; margin: 0 auto 20px; }
.score-inner { width: 90px; height: 90px; background: white; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 24px; font-weight: bold; color: #1f2937; }
.score-label { font-size: 18px; color: #6366f1; font-weight: bold; }
.section { margin-bottom: 40px; }
.section-title { font-size: 20px; font-weight: bold; color: #1f2937; margin-bottom: 20px; border-left: 4px solid #6366f1; padding-left: 15px; }
.category { background: white; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px; margin-bottom: 20px; }
.category-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 15px; }
.category-title { font-size: 16px; font-weight: bold; color: #1f2937; }
.category-score { font-size: 14px; font-weight: bold; color: #6366f1; }
.progress-bar { width: 100%; height: 8px; background: #e5e7eb; border-radius: 4px; overflow: hidden; margin-bottom: 15px; }
.progress-fill { height: 100%; background: #6366f1; }
.recommendations { list-style: none; padding: 0; }
.recommendations li { padding: 8px 0; border-bottom: 1px solid #f3f4f6; color: #4b5563; font-size: 14px; }
.recommendations li:before { content: "\2192  "; color: #6366f1; font-weight: bold; }
.executive-summary { background: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 20px; border-radius: 0 8px 8px 0; margin-bottom: 30px; }
.priority-actions { background: #fef3c7; border-left: 4px solid #f59e0b; padding: 20px; border-radius: 0 8px 8px 0; }
.compliance-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; }
.compliance-item { padding: 15px; background: #f8fafc; border-radius: 8px; text-align: center; }
.compliance-name { font-weight: bold; color: #1f2937; margin-bottom: 5px; }
.compliance-status { font-size: 12px; padding: 4px 8px; border-radius: 12px; color: white; }
.compliant { background: #10b981; }
.gaps { background: #ef4444; }
.footer { text-align: center; padding-top: 30px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 12px; }
@media print {
  body { print-color-adjust: exact; }
  .container { padding: 20px; }
}
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <div class="logo">GoCyberCheck</div>
    <div class="company-name">{{ .CompanyName }}</div>
    <div class="date">Cybersecurity Assessment Report &bull; {{ .CompletedAt }}</div>
  </div>

  <div class="score-section">
    <div class="score-circle"><div class="score-inner">{{ .OverallScore }}%</div></div>
    <div class="score-label">Overall Security Score ({{ .TierLabel | title }})</div>
  </div>

  <div class="section">
    <div class="section-title">Executive Summary</div>
    <div class="executive-summary">{{ .ExecutiveSummary }}</div>
  </div>

  <div class="section">
    <div class="section-title">Category Assessment</div>
    {{- range .CategoryResults }}
    <div class="category">
      <div class="category-header">
        <div class="category-title">{{ .Title }}</div>
        <div class="category-score">{{ .Percent }}%</div>
      </div>
      <div class="progress-bar"><div class="progress-fill" style="width: {{ .Percent }}%"></div></div>
      <div class="section-title" style="font-size: 14px; margin-bottom: 10px;">Recommendations:</div>
      <ul class="recommendations">
        {{- range .Recommendations }}
        <li>{{ . }}</li>
        {{- end }}
      </ul>
    </div>
    {{- end }}
  </div>

  <div class="section">
    <div class="section-title">Priority Actions</div>
    <div class="priority-actions">
      <ul class="recommendations">
        {{- range .PriorityActions }}
        <li>{{ . }}</li>
        {{- end }}
      </ul>
    </div>
  </div>

  <div class="section">
    <div class="section-title">Compliance Mapping</div>
    <div class="compliance-grid">
      {{- range .ComplianceMapping }}
      <div class="compliance-item">
        <div class="compliance-name">{{ .Framework }}</div>
        <div class="compliance-status {{ statusClass .Status }}">{{ .Status }}</div>
      </div>
      {{- end }}
    </div>
  </div>

  <div class="footer">
    <p>This report was generated by GoCyberCheck for {{ .Email }}</p>
    <p>For questions or support, contact: support@gocybercheck.com</p>
  </div>
</div>
</body>
</html>
`
