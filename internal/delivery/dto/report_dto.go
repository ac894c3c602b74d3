package dto

// Response DTOs

type StatusCountResponse struct {
	Status string `json:"estado"`
	Total  int64  `json:"total"`
}

type DailyCountResponse struct {
	Date   string `json:"fecha"`
	Status string `json:"estado"`
	Total  int64  `json:"total"`
}

type BookingReportResponse struct {
	ByStatus []StatusCountResponse `json:"porEstado"`
	ByDay    []DailyCountResponse  `json:"porDia"`
}
