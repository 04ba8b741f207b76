package dto

// SelectOption 表单下拉选项
type SelectOption struct {
	Text     string `json:"text"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}
