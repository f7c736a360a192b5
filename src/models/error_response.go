package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error กลับไปให้ client
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}
