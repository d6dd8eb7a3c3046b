package settings

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

type SettingResponse struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	IsDefault bool    `json:"is_default"`
	UpdatedBy *string `json:"updated_by"`
	UpdatedAt *string `json:"updated_at"`
}
