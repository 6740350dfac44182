package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dynamic_shipping/internal/adapter/http/handlers/mocks"
	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.GET("/v1/profile", identityFor(""), h.GetProfile)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.GET("/v1/profile", identityFor("user-1"), h.GetProfile)

		uc.EXPECT().Get(gomock.Any(), "user-1").Return(entities.Profile{}, usecase.ErrProfileNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.GET("/v1/profile", identityFor("user-1"), h.GetProfile)

		uc.EXPECT().Get(gomock.Any(), "user-1").Return(entities.Profile{ID: "user-1", FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["email"] != "ana@example.com" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.POST("/v1/profile", identityFor("user-1"), h.CreateProfile)

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(`{"first_name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already exists maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.POST("/v1/profile", identityFor("user-1"), h.CreateProfile)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Profile{}, usecase.ErrProfileAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(`{"first_name":"Ana","last_name":"Silva","email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.POST("/v1/profile", identityFor("user-1"), h.CreateProfile)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p entities.Profile) (entities.Profile, error) {
				if p.ID != "user-1" {
					t.Fatalf("expected profile keyed by caller, got %q", p.ID)
				}
				return p, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/profile", bytes.NewBufferString(`{"first_name":"Ana","last_name":"Silva","email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProfileUseCase(ctrl)
	h := NewProfileHandler(uc)

	r := gin.New()
	r.PUT("/v1/profile", identityFor("user-1"), h.UpdateProfile)

	uc.EXPECT().Update(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ any, userID string, upd entities.ProfileUpdate) (entities.Profile, error) {
			if upd.Phone == nil || *upd.Phone != "+55 11 99999-0000" {
				t.Fatalf("expected phone update, got %+v", upd)
			}
			if upd.FirstName != nil {
				t.Fatalf("expected absent fields to stay nil")
			}
			return entities.Profile{ID: userID, Phone: *upd.Phone}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(`{"phone":"+55 11 99999-0000"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
