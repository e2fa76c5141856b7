package dto

// ── responses ──

// TokenResponse login result
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// VideoUploadResponse POST /videos
type VideoUploadResponse struct {
	Message  string `json:"message"`
	VideoID  int    `json:"videoId"`
	VideoURL string `json:"videoUrl"`
}

// SweepReport outcome of an orphan sweep
type SweepReport struct {
	Checked int `json:"checked"`
	Linked  int `json:"linked"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}
