package presenter

import (
	meetingDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/meeting"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/reunicheck/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meetingDTO.MeetingResponse{
		ID:        m.ID.String(),
		GroupID:   m.GroupID.String(),
		Topic:     m.Topic,
		State:     string(m.State),
		UserID:    m.UserID.String(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToCreateMeetingResponse converts the created group to its DTO
func ToCreateMeetingResponse(out *meetingUsecase.CreateMeetingOutput) *meetingDTO.CreateMeetingResponse {
	if out == nil {
		return nil
	}
	entries := make([]*meetingDTO.MeetingEntryResponse, 0, len(out.Meetings))
	for _, m := range out.Meetings {
		entries = append(entries, &meetingDTO.MeetingEntryResponse{
			MeetingID:     m.MeetingID.String(),
			Topic:         m.Topic,
			Email:         m.Email,
			UserID:        m.UserID.String(),
			QuestionCount: m.QuestionCount,
		})
	}
	return &meetingDTO.CreateMeetingResponse{
		GroupID:  out.GroupID.String(),
		Meetings: entries,
	}
}

// ToMeetingSummaries converts meetings to their short form
func ToMeetingSummaries(meetings []*entities.Meeting) []*meetingDTO.MeetingSummary {
	out := make([]*meetingDTO.MeetingSummary, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, &meetingDTO.MeetingSummary{
			MeetingID: m.ID.String(),
			Topic:     m.Topic,
		})
	}
	return out
}

// ToGroupProgressResponse converts participant progress to its DTO
func ToGroupProgressResponse(groupID string, progress []meetingUsecase.ParticipantProgress) *meetingDTO.GroupProgressResponse {
	participants := make([]*meetingDTO.ParticipantProgressResponse, 0, len(progress))
	for _, p := range progress {
		participants = append(participants, &meetingDTO.ParticipantProgressResponse{
			MeetingID:      p.MeetingID.String(),
			UserID:         p.UserID.String(),
			Email:          p.Email,
			State:          string(p.State),
			TotalQuestions: p.Total,
			Answered:       p.Answered,
			Complete:       p.Complete(),
		})
	}
	return &meetingDTO.GroupProgressResponse{
		GroupID:      groupID,
		Participants: participants,
	}
}
