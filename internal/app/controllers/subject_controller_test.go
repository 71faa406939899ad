package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

// stubSubjectService returns canned results so controller behavior can be
// tested without a database.
type stubSubjectService struct {
	subject *models.Subject
	list    []*models.Subject
	err     error
}

func (s *stubSubjectService) ListSubjects(ctx context.Context, identity auth.Identity, groupLevel string) ([]*models.Subject, error) {
	return s.list, s.err
}

func (s *stubSubjectService) GetSubject(ctx context.Context, identity auth.Identity, id int64) (*models.Subject, error) {
	return s.subject, s.err
}

func (s *stubSubjectService) GetSubjectByName(ctx context.Context, identity auth.Identity, name string) (*models.Subject, error) {
	return s.subject, s.err
}

func (s *stubSubjectService) CreateSubject(ctx context.Context, identity auth.Identity, req dto.CreateSubjectRequest) (*models.Subject, error) {
	return s.subject, s.err
}

func (s *stubSubjectService) UpdateSubject(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	return s.subject, s.err
}

func (s *stubSubjectService) DeleteSubject(ctx context.Context, identity auth.Identity, id int64) error {
	return s.err
}

func withTestIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetIdentity(c, auth.Identity{
			UserID: 1,
			Email:  "admin@example.com",
			Roles:  []models.RoleType{models.RoleAdmin},
		})
		c.Next()
	}
}

func newSubjectTestRouter(svc *stubSubjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewSubjectController(svc)

	group := router.Group("/api/v1/subjects", withTestIdentity())
	group.GET("", controller.ListSubjects)
	group.GET("/:id", controller.GetSubject)
	group.POST("", controller.CreateSubject)
	group.DELETE("/:id", controller.DeleteSubject)
	return router
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return envelope
}

func TestListSubjectsEnvelope(t *testing.T) {
	svc := &stubSubjectService{list: []*models.Subject{
		{ID: 1, SubjectName: "Mathematics", GroupLevel: "G1"},
	}}
	router := newSubjectTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subjects", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	envelope := decodeEnvelope(t, w.Body)
	if success, _ := envelope["success"].(bool); !success {
		t.Error("success should be true")
	}
	if envelope["message"] != "subjects retrieved" {
		t.Errorf("message = %v, want \"subjects retrieved\"", envelope["message"])
	}
	if _, ok := envelope["timestamp"]; !ok {
		t.Error("envelope should carry a timestamp")
	}
	payload, ok := envelope["payload"].([]interface{})
	if !ok || len(payload) != 1 {
		t.Errorf("payload = %v, want a one-element list", envelope["payload"])
	}
}

func TestCreateSubjectResponses(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubSubjectService{subject: &models.Subject{ID: 5, SubjectName: "Chemistry"}}
		router := newSubjectTestRouter(svc)

		body := bytes.NewBufferString(`{"subjectName":"Chemistry"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", w.Code)
		}
	})

	t.Run("binding failure", func(t *testing.T) {
		svc := &stubSubjectService{}
		router := newSubjectTestRouter(svc)

		// subjectName is required
		body := bytes.NewBufferString(`{}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("conflict maps to 400", func(t *testing.T) {
		svc := &stubSubjectService{err: apperrors.ErrSubjectNameAlreadyExists}
		router := newSubjectTestRouter(svc)

		body := bytes.NewBufferString(`{"subjectName":"Chemistry"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/subjects", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		envelope := decodeEnvelope(t, w.Body)
		if success, _ := envelope["success"].(bool); success {
			t.Error("success should be false")
		}
	})
}

func TestGetSubjectErrorStatuses(t *testing.T) {
	t.Run("invalid id parameter", func(t *testing.T) {
		router := newSubjectTestRouter(&stubSubjectService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subjects/abc", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		router := newSubjectTestRouter(&stubSubjectService{err: apperrors.ErrSubjectNotFound})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subjects/99", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		router := newSubjectTestRouter(&stubSubjectService{err: apperrors.NewForbiddenError("no access")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subjects/1", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})
}

func TestDeleteSubjectResponse(t *testing.T) {
	router := newSubjectTestRouter(&stubSubjectService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/subjects/1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	envelope := decodeEnvelope(t, w.Body)
	if envelope["message"] != "subject deleted" {
		t.Errorf("message = %v, want \"subject deleted\"", envelope["message"])
	}
}
