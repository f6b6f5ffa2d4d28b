package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalhq/asset-verify/models"
)

const reportContent = `# 项目分析报告

## 执行摘要
本季度平台保持稳定增长。

## 详细分析
| 指标 | 数值 |
| 总用户数：1000 | - |
报告日期: 2024-05-01

## 结论
审核状态：已批准
`

func TestMissingStructures_AllPresent(t *testing.T) {
	svc := NewContentService()
	required := []string{"# 项目分析报告", "## 执行摘要", "## 详细分析", "| 指标 | 数值 |", "## 结论"}

	missing := svc.MissingStructures(reportContent, required)

	assert.Empty(t, missing)
}

func TestMissingStructures_EnumeratesEveryMissingItem(t *testing.T) {
	svc := NewContentService()
	required := []string{"# 项目分析报告", "## 风险评估", "## 附录", "## 结论"}

	missing := svc.MissingStructures(reportContent, required)

	assert.Equal(t, []string{"## 风险评估", "## 附录"}, missing)
}

func TestMissingStructures_NoRequirements(t *testing.T) {
	svc := NewContentService()

	assert.Empty(t, svc.MissingStructures(reportContent, nil))
}

func TestCheckRules_StatMatch(t *testing.T) {
	svc := NewContentService()

	tests := []struct {
		name     string
		content  string
		expected string
		wantPass bool
	}{
		{
			name:     "integer matches",
			content:  "总用户数：1000",
			expected: "1000",
			wantPass: true,
		},
		{
			name:     "decimal does not match integer expectation",
			content:  "总用户数：1000.5",
			expected: "1000",
			wantPass: false,
		},
		{
			name:     "string comparison not numeric",
			content:  "总用户数：1000",
			expected: "1000.0",
			wantPass: false,
		},
		{
			name:     "target absent",
			content:  "活跃用户：1000",
			expected: "1000",
			wantPass: false,
		},
		{
			name:     "line without number",
			content:  "总用户数：未统计",
			expected: "1000",
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []models.ContentRule{
				{Kind: models.RuleStatMatch, Target: "总用户数：", Expected: tt.expected},
			}

			failure := svc.CheckRules(tt.content, rules)

			if tt.wantPass {
				assert.Nil(t, failure)
			} else {
				require.NotNil(t, failure)
				assert.Equal(t, models.RuleStatMatch, failure.Rule.Kind)
			}
		})
	}
}

func TestCheckRules_StatMatch_FirstMatchingLineDecides(t *testing.T) {
	svc := NewContentService()
	content := "总用户数：999\n总用户数：1000\n"
	rules := []models.ContentRule{
		{Kind: models.RuleStatMatch, Target: "总用户数：", Expected: "1000"},
	}

	failure := svc.CheckRules(content, rules)

	require.NotNil(t, failure)
}

func TestCheckRules_RegexMatch(t *testing.T) {
	svc := NewContentService()
	rules := []models.ContentRule{
		{Kind: models.RuleRegexMatch, Target: "报告日期", Expected: `\d{4}-\d{2}-\d{2}`},
	}

	assert.Nil(t, svc.CheckRules("报告日期: 2024-05-01", rules))
	assert.NotNil(t, svc.CheckRules("报告日期: 待定", rules))
}

func TestCheckRules_TextMatch(t *testing.T) {
	svc := NewContentService()
	rules := []models.ContentRule{
		{Kind: models.RuleTextMatch, Target: "审核状态", Expected: "审核状态：已批准"},
	}

	assert.Nil(t, svc.CheckRules(reportContent, rules))
	assert.NotNil(t, svc.CheckRules("审核状态：待审核", rules))
}

func TestCheckRules_FirstFailureWins(t *testing.T) {
	svc := NewContentService()
	rules := []models.ContentRule{
		{Kind: models.RuleTextMatch, Target: "审核状态", Expected: "不存在的文本"},
		{Kind: models.RuleRegexMatch, Target: "报告日期", Expected: `也不匹配`},
	}

	failure := svc.CheckRules(reportContent, rules)

	require.NotNil(t, failure)
	assert.Equal(t, "不存在的文本", failure.Rule.Expected)
}

func TestCheckRules_EmptyRuleSet(t *testing.T) {
	svc := NewContentService()

	assert.Nil(t, svc.CheckRules(reportContent, nil))
}

func TestCheckRules_UnknownKindFails(t *testing.T) {
	svc := NewContentService()
	rules := []models.ContentRule{
		{Kind: models.RuleKind("fuzzy_match"), Expected: "x"},
	}

	assert.NotNil(t, svc.CheckRules(reportContent, rules))
}
