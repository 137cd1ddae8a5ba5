package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphqlStub serves canned GraphQL responses and records what it received.
type graphqlStub struct {
	t        *testing.T
	response string
	status   int

	lastQuery     string
	lastVariables map[string]any
	lastHeader    http.Header
}

func (s *graphqlStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(s.t, http.MethodPost, r.Method)

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(s.t, json.NewDecoder(r.Body).Decode(&req))

		s.lastQuery = req.Query
		s.lastVariables = req.Variables
		s.lastHeader = r.Header.Clone()

		status := s.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s.response))
	}
}

func newStubClient(t *testing.T, stub *graphqlStub) *Client {
	t.Helper()
	stub.t = t
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestClientRequestHeaders(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"getAllMentors": []}}`}
	client := newStubClient(t, stub)

	_, err := client.GetAllMentors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", stub.lastHeader.Get("Content-Type"))
	assert.NotEmpty(t, stub.lastHeader.Get("X-Request-ID"))
	assert.Empty(t, stub.lastHeader.Get(SessionHeader), "no session header before SetToken")

	client.SetToken("token-abc")
	_, err = client.GetAllMentors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "token-abc", stub.lastHeader.Get(SessionHeader))
}

func TestClientGraphQLError(t *testing.T) {
	stub := &graphqlStub{response: `{"data": null, "errors": [{"message": "Invalid session"}, {"message": "second"}]}`}
	client := newStubClient(t, stub)

	_, err := client.GetAllMentors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid session")
}

func TestClientHTTPError(t *testing.T) {
	stub := &graphqlStub{status: http.StatusBadGateway, response: `upstream down`}
	client := newStubClient(t, stub)

	_, err := client.GetAllMentors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(server.URL)

	_, err := client.GetAllMentors(context.Background())
	require.Error(t, err)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     LoginPayload
	}{
		{
			name: "accepted credentials",
			response: `{"data": {"loginUser": {
				"accessToken": "tok-1",
				"refreshToken": "ref-1",
				"user": {"firstName": "Grace", "email": "grace@example.com", "isMentor": true, "isAdmin": false},
				"message": "Login successful"
			}}}`,
			want: LoginPayload{
				AccessToken:  "tok-1",
				RefreshToken: "ref-1",
				User:         UserIdentity{FirstName: "Grace", Email: "grace@example.com", IsMentor: true},
				Message:      "Login successful",
			},
		},
		{
			name:     "rejected credentials yield empty payload",
			response: `{"data": {"loginUser": null}}`,
			want:     LoginPayload{},
		},
		{
			name:     "token absent from payload",
			response: `{"data": {"loginUser": {"message": "Invalid credentials"}}}`,
			want:     LoginPayload{Message: "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &graphqlStub{response: tt.response}
			client := newStubClient(t, stub)

			payload, err := client.LoginUser(context.Background(), "grace@example.com", "pw")
			require.NoError(t, err)
			require.NotNil(t, payload)
			assert.Equal(t, tt.want, *payload)

			assert.Equal(t, "grace@example.com", stub.lastVariables["email"])
			assert.Equal(t, "pw", stub.lastVariables["password"])
		})
	}
}

func TestRegisterUser(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"registerUser": {"message": "Account created"}}}`}
	client := newStubClient(t, stub)

	message, err := client.RegisterUser(context.Background(), RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Account created", message)
	assert.Equal(t, "ada@example.com", stub.lastVariables["email"])
}

func TestGetAllMentors(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"getAllMentors": [
		{"firstName": "Grace", "lastName": "Hopper", "email": "grace@example.com", "occupation": "Engineer", "expertise": "Compilers"},
		{"firstName": "Alan", "lastName": "Turing", "email": "alan@example.com"}
	]}}`}
	client := newStubClient(t, stub)

	mentors, err := client.GetAllMentors(context.Background())
	require.NoError(t, err)
	require.Len(t, mentors, 2)
	assert.Equal(t, "grace@example.com", mentors[0].Email)
	assert.Equal(t, "Compilers", mentors[0].Expertise)
}

func TestGetReviewsForMentor(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"getReviewsForMentor": [
		{"id": "r1", "rating": 5, "comment": "great", "mentee": {"firstName": "Ada", "lastName": "Lovelace"}},
		{"id": "r2", "rating": 2, "comment": "late"}
	]}}`}
	client := newStubClient(t, stub)

	reviews, err := client.GetReviewsForMentor(context.Background(), "grace@example.com")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Ada", reviews[0].Mentee.FirstName)
	assert.Equal(t, "grace@example.com", stub.lastVariables["mentorEmail"])
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	assert.InDelta(t, 3.5, AverageRating([]Review{{Rating: 5}, {Rating: 2}}), 0.0001)
}

func TestRequestMentorshipSession(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &graphqlStub{response: `{"data": {"requestMentorshipSession": {
			"mentorshipSession": {"id": "s1", "topic": "Go interfaces", "date": "2026-09-01", "status": "pending"},
			"message": "Session requested"
		}}}`}
		client := newStubClient(t, stub)

		session, err := client.RequestMentorshipSession(context.Background(), "grace@example.com", "Go interfaces")
		require.NoError(t, err)
		assert.Equal(t, "s1", session.ID)
		assert.Equal(t, "pending", session.Status)
	})

	t.Run("not created", func(t *testing.T) {
		stub := &graphqlStub{response: `{"data": {"requestMentorshipSession": {
			"mentorshipSession": null,
			"message": "Mentor not found"
		}}}`}
		client := newStubClient(t, stub)

		_, err := client.RequestMentorshipSession(context.Background(), "nobody@example.com", "Go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mentor not found")
	})
}

func TestManageMentorshipSession(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"manageMentorshipSession": {"message": "Session accepted"}}}`}
	client := newStubClient(t, stub)

	message, err := client.ManageMentorshipSession(context.Background(), "s1", SessionAccept)
	require.NoError(t, err)
	assert.Equal(t, "Session accepted", message)
	assert.Equal(t, "s1", stub.lastVariables["sessionId"])
	assert.Equal(t, "accept", stub.lastVariables["action"])

	_, err = client.ManageMentorshipSession(context.Background(), "s1", SessionAction("cancel"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session action")
}

func TestAllUsers(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"allUsers": [
		{"firstName": "Grace", "lastName": "Hopper", "email": "grace@example.com", "isMentor": true},
		{"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "isMentor": false}
	]}}`}
	client := newStubClient(t, stub)

	users, err := client.AllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "mentor", users[0].Role())
	assert.Equal(t, "mentee", users[1].Role())
}

func TestChangeUserToMentor(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"changeUserToMentor": {"message": "User promoted"}}}`}
	client := newStubClient(t, stub)

	message, err := client.ChangeUserToMentor(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "User promoted", message)
	assert.Equal(t, "ada@example.com", stub.lastVariables["email"])
}

func TestDeleteUser(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"deleteUser": {"success": true}}}`}
	client := newStubClient(t, stub)

	ok, err := client.DeleteUser(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHideReview(t *testing.T) {
	stub := &graphqlStub{response: `{"data": {"hideReview": {"message": "Review hidden"}}}`}
	client := newStubClient(t, stub)

	message, err := client.HideReview(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Review hidden", message)
	assert.Equal(t, "r1", stub.lastVariables["reviewId"])
}
