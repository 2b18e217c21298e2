package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mborg/chatboard/internal/common"
	"github.com/mborg/chatboard/internal/server/models"
	"github.com/mborg/chatboard/internal/validate"
)

type loginRequest struct {
	Username string `json:"username"`
}

type addMsgRequest struct {
	Msg string `json:"msg"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type msgResponse struct {
	ID        int64         `json:"id"`
	Msg       string        `json:"msg"`
	AuthorID  int64         `json:"authorId"`
	Author    *userResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func toMsgResponse(m *models.Msg) msgResponse {
	resp := msgResponse{
		ID:        m.ID,
		Msg:       m.Text,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Author != nil {
		resp.Author = &userResponse{ID: m.Author.ID, Username: m.Author.UserName}
	}
	return resp
}

// login authenticates by username alone and, on success, delivers the session
// credential via the auth cookie. 204 on success, 400 on a malformed body or
// username, 401 when the username is unknown.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "fields are missing"})
		return
	}

	user, err := s.chat.Login(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, common.ErrLoginFailed) {
			c.JSON(401, gin.H{"error": "Login failed"})
			return
		}
		s.fail(c, err)
		return
	}

	if err := s.sendAuthCookie(c, user.ID, user.UserName); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(204)
}

// addMsg appends a message authored by the verified identity.
func (s *Server) addMsg(c *gin.Context) {
	var req addMsgRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Msg == "" {
		c.JSON(400, gin.H{"error": "fields are missing"})
		return
	}

	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Invalid or missing authorization token"})
		return
	}

	author := &models.User{ID: identity.ID, UserName: identity.Username}
	msg, err := s.chat.AddMsg(c.Request.Context(), req.Msg, author)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(200, toMsgResponse(msg))
}

// listMsgs returns the whole conversation, oldest first.
func (s *Server) listMsgs(c *gin.Context) {
	msgs, err := s.chat.FindAllMsgs(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := make([]msgResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, toMsgResponse(m))
	}
	c.JSON(200, resp)
}

func (s *Server) findMsg(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "id must be a positive integer"})
		return
	}

	msg, err := s.chat.FindMsg(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(200, toMsgResponse(msg))
}

// deleteMsg removes a message. Only its author may delete it; the check runs
// here, against the verified identity, before the business layer is invoked.
func (s *Server) deleteMsg(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "id must be a positive integer"})
		return
	}

	msg, err := s.chat.FindMsg(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	identity, ok := identityFrom(c)
	if !ok || identity.ID != msg.AuthorID {
		c.JSON(401, gin.H{"error": "Unauthorised user"})
		return
	}

	if err := s.chat.DeleteMsg(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(204)
}

// fail maps a business-layer error onto the HTTP taxonomy: validation 400,
// not-found 404, everything else 500 with the full chain logged and nothing
// internal leaked to the client.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &validate.Error{}):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(404, gin.H{"error": "No such message"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(500, gin.H{"error": "internal error"})
	}
}
