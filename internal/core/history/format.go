package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Filter は検索語と操作種別で履歴を絞り込みます。検索語は氏名スナップショット
// または操作者に対する大文字小文字を区別しない部分一致で、操作種別は
// ActionFilterAll のとき全件を通します。両条件は AND で評価します。
func Filter(entries []*Entry, searchTerm, actionFilter string) []*Entry {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]*Entry, 0, len(entries))
	for _, entry := range entries {
		if term != "" &&
			!strings.Contains(strings.ToLower(entry.EmployeeName), term) &&
			!strings.Contains(strings.ToLower(entry.UpdatedBy), term) {
			continue
		}
		if actionFilter != "" && actionFilter != ActionFilterAll && string(entry.Action) != actionFilter {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// DescribeChange は1件のフィールド変更を「人が読める形」で描画します。
// 例: "start date: 2022-03-15 → 2022-04-01"
func DescribeChange(fieldName string, change Change) string {
	return fmt.Sprintf("%s: %s → %s", HumanizeField(fieldName), FormatValue(change.From), FormatValue(change.To))
}

// ActionLabel は操作種別の表示ラベルを返します。未知の種別はそのまま
// 返し、新しい種別が増えても壊れないようにします。
func ActionLabel(action Action) string {
	switch action {
	case ActionCreated:
		return "Created"
	case ActionUpdated:
		return "Updated"
	case ActionStatusChanged:
		return "Status changed"
	default:
		return string(action)
	}
}

// HumanizeField は camelCase のフィールド識別子を空白区切りの小文字に
// 変換します。例: "employmentType" -> "employment type"
func HumanizeField(fieldName string) string {
	var b strings.Builder
	for _, r := range fieldName {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatValue は変更値を表示用文字列にします。履歴は JSON を介して保存される
// ことがあるため、復元後の汎用表現(float64 や []any)も受け付けます。
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	case []string:
		return strings.Join(x, ", ")
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
