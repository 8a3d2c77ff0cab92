package model

type CreateSessionRequest struct {
	Key      *Key           `json:"key"`
	Settings *SettingsPatch `json:"settings"`
}

type CreateSessionResponse struct {
	Id    string      `json:"id"`
	State EngineState `json:"state"`
}

type SessionListResponse struct {
	Ids []string `json:"ids"`
}

type GenerateBarsRequest struct {
	Count int `json:"count"`
}

type ResetRequest struct {
	Key *Key `json:"key"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
