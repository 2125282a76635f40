package presenter

import (
	analysisDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/analysis"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// ToResultResponse converts an AnalysisResult entity to ResultResponse DTO
func ToResultResponse(r *entities.AnalysisResult) *analysisDTO.ResultResponse {
	if r == nil {
		return nil
	}
	response := &analysisDTO.ResultResponse{
		ID:              r.ID.String(),
		MeetingID:       r.MeetingID.String(),
		Conclusions:     r.Conclusions,
		IsMeetingNeeded: r.IsMeetingNeeded,
		Status:          string(r.Status),
		RawResponse:     r.RawResponse,
		Model:           r.Model,
		CreatedAt:       r.CreatedAt,
	}
	if r.RequestedBy != nil {
		by := r.RequestedBy.String()
		response.RequestedBy = &by
	}
	return response
}
