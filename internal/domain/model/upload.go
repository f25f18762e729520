package model

// Upload describes an uploaded model file held in memory for the duration of a
// single request.
type Upload struct {
	FileName string
	Size     int64
	Data     []byte
}
