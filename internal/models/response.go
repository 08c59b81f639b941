package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ListData wraps a list payload with its references.
type ListData struct {
	LimitExceeded bool            `json:"limitExceeded"`
	List          interface{}     `json:"list"`
	References    ReferencesModel `json:"references"`
}

// EntryData wraps a single-entry payload with its references.
type EntryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the current time in milliseconds for response envelopes.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse creates an OK response wrapping an arbitrary payload
func NewOKResponse(data interface{}) ResponseModel {
	return newOKResponse(data)
}

func newOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse creates an OK response wrapping a list and its references
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return newOKResponse(ListData{
		LimitExceeded: false,
		List:          list,
		References:    references,
	})
}

// NewListResponseWithRange creates an OK list response with an explicit limitExceeded flag
func NewListResponseWithRange(list interface{}, references ReferencesModel, limitExceeded bool) ResponseModel {
	return newOKResponse(ListData{
		LimitExceeded: limitExceeded,
		List:          list,
		References:    references,
	})
}

// NewEntryResponse creates an OK response wrapping a single entry and its references
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return newOKResponse(EntryData{
		Entry:      entry,
		References: references,
	})
}
