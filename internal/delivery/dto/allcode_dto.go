package dto

type AllcodeResponse struct {
	KeyMap  string `json:"keyMap"`
	Type    string `json:"type"`
	ValueEn string `json:"valueEn"`
	ValueVi string `json:"valueVi"`
}
