package platform

import (
	"context"
	"fmt"
)

// MentorshipSession is a booked or requested mentorship session
type MentorshipSession struct {
	ID     string `json:"id"`
	Topic  string `json:"topic"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// SessionRequest is a pending session as seen by the mentor it targets
type SessionRequest struct {
	ID     string `json:"id"`
	Mentee Person `json:"mentee"`
	Topic  string `json:"topic"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// SessionAction is a mentor's decision on a pending session request
type SessionAction string

const (
	// SessionAccept accepts a pending request
	SessionAccept SessionAction = "accept"
	// SessionReject rejects a pending request
	SessionReject SessionAction = "reject"
)

const requestMentorshipSessionMutation = `
mutation RequestMentorshipSession($mentorEmail: String!, $topic: String!) {
  requestMentorshipSession(mentorEmail: $mentorEmail, topic: $topic) {
    mentorshipSession {
      id
      topic
      date
      status
    }
    message
  }
}`

// RequestMentorshipSession books a session with a mentor
func (c *Client) RequestMentorshipSession(ctx context.Context, mentorEmail, topic string) (*MentorshipSession, error) {
	var data struct {
		RequestMentorshipSession struct {
			MentorshipSession *MentorshipSession `json:"mentorshipSession"`
			Message           string             `json:"message"`
		} `json:"requestMentorshipSession"`
	}

	err := c.do(ctx, requestMentorshipSessionMutation, map[string]any{
		"mentorEmail": mentorEmail,
		"topic":       topic,
	}, &data)
	if err != nil {
		return nil, err
	}

	if data.RequestMentorshipSession.MentorshipSession == nil {
		return nil, fmt.Errorf("booking was not created: %s", data.RequestMentorshipSession.Message)
	}
	return data.RequestMentorshipSession.MentorshipSession, nil
}

const getPendingSessionsQuery = `
query GetPendingSessions {
  getPendingSessions {
    id
    mentee {
      firstName
      lastName
      email
    }
    topic
    date
    status
  }
}`

// GetPendingSessions retrieves the calling mentor's pending session requests
func (c *Client) GetPendingSessions(ctx context.Context) ([]SessionRequest, error) {
	var data struct {
		GetPendingSessions []SessionRequest `json:"getPendingSessions"`
	}

	if err := c.do(ctx, getPendingSessionsQuery, nil, &data); err != nil {
		return nil, err
	}

	return data.GetPendingSessions, nil
}

const manageMentorshipSessionMutation = `
mutation ManageMentorshipSession($sessionId: String!, $action: String!) {
  manageMentorshipSession(sessionId: $sessionId, action: $action) {
    message
  }
}`

// ManageMentorshipSession accepts or rejects a pending session request
func (c *Client) ManageMentorshipSession(ctx context.Context, sessionID string, action SessionAction) (string, error) {
	if action != SessionAccept && action != SessionReject {
		return "", fmt.Errorf("invalid session action %q", action)
	}

	var data struct {
		ManageMentorshipSession struct {
			Message string `json:"message"`
		} `json:"manageMentorshipSession"`
	}

	err := c.do(ctx, manageMentorshipSessionMutation, map[string]any{
		"sessionId": sessionID,
		"action":    string(action),
	}, &data)
	if err != nil {
		return "", err
	}

	return data.ManageMentorshipSession.Message, nil
}
