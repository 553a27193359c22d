// Package i18n は画面表示文言の翻訳を提供します。
package i18n

import (
	"fmt"
	"strings"
)

// Language は表示言語を表します。
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Params は文言内のプレースホルダーへ埋め込む値です。
type Params map[string]any

// Translator は言語ごとの文言テーブルを保持します。
type Translator struct {
	language Language
}

// New は指定言語の Translator を返します。未対応の言語は英語に
// フォールバックします。
func New(language string) *Translator {
	lang := Language(strings.ToLower(strings.TrimSpace(language)))
	switch lang {
	case English, Chinese:
	default:
		lang = English
	}
	return &Translator{language: lang}
}

// Language は現在の表示言語を返します。
func (t *Translator) Language() Language { return t.language }

// Translate はキーに対応する文言を返します。キー自体が英語の原文なので、
// テーブルにない場合はキーをそのまま返します。params の各キーは文言内の
// {key} を置換します。
func (t *Translator) Translate(key string, params Params) string {
	text, ok := tables[t.language][key]
	if !ok {
		text = key
	}

	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprint(value))
	}

	return text
}

// tables のキーは英語の原文です。英語はキーがそのまま文言になるため
// テーブルを持ちません。
var tables = map[Language]map[string]string{
	English: {},
	Chinese: {
		"Employee Management":           "员工管理",
		"Employees":                     "员工",
		"Employee Number":               "员工编号",
		"Department":                    "部门",
		"Departments":                   "部门数",
		"Position":                      "职位",
		"Email":                         "邮箱",
		"Phone":                         "电话",
		"Status":                        "状态",
		"Active":                        "在职",
		"Inactive":                      "离职",
		"Full-time":                     "全职",
		"Part-time":                     "兼职",
		"Contract":                      "合同工",
		"Probation":                     "试用期",
		"Start Date":                    "入职日期",
		"Annual Salary":                 "年薪",
		"Average Salary":                "平均薪资",
		"Active Employees":              "在职员工",
		"Active Departments":            "活跃部门",
		"Total Employees":               "员工总数",
		"Recent Hires":                  "最近入职",
		"Edit History":                  "编辑历史",
		"Created":                       "创建",
		"Updated":                       "更新",
		"Status changed":                "状态变更",
		"Documents":                     "文档",
		"On Probation":                  "试用期内",
		"Probation ends in {days} days": "试用期还剩 {days} 天",
		"Logged in as {name}":           "当前登录:{name}",
		"Invalid username or password":  "用户名或密码错误",
		"Employee not found":            "未找到该员工",
		"No employees found":            "没有找到员工",
		"No history entries":            "暂无历史记录",
	},
}
