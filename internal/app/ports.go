package app

import "context"

type ShiftStartDateUseCase interface {
	ShiftStartDate(ctx context.Context, req ShiftStartDateRequest) (*ShiftStartDateResponse, error)
}
