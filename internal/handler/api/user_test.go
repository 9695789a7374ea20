//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router, _ = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/users", h.Create)
	s.router.GET("/users", h.List)
	s.router.GET("/users/:userId", h.Get)
	s.router.PATCH("/users/:userId", h.Update)
	s.router.DELETE("/users/:userId", h.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	ub := builder.NewUserBuilder()
	reqBody := ub.BuildCreateRequestDTO()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateUserRequest{Name: ub.Name, Email: ub.Email}).
			Return(&commands.CreateUserResult{UserID: ub.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), ub.ID).Return(ub.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, 0)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.UserResponse{ID: ub.ID, Name: ub.Name, Email: ub.Email}, body)
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing name", mutate: testutil.Field("name", nil)},
		{name: "blank name", mutate: testutil.Field("name", "   ")},
		{name: "missing email", mutate: testutil.Field("email", nil)},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", testutil.DtoMap(s.T(), reqBody, tc.mutate), 0)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 400 on a malformed email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, user.ErrInvalidEmail)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "nope")), 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid email format")
	})

	s.Run("error: 409 on a taken email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, user.ErrEmailDuplicate)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already in use")
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update", func() {
		name := "Carol"
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), commands.UpdateUserRequest{Name: &name}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(builder.NewUserBuilder().WithName(name).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1", map[string]any{"name": name}, 0)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Carol", body.Name)
	})

	s.Run("error: 400 on a blank field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1", map[string]any{"email": ""}, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 on an unknown user", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(commands.ErrUserNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/9", map[string]any{"name": "X"}, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestReadAndDelete() {
	s.Run("get: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, queries.ErrUserNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/5", nil, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("get: 400 on a bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/0", nil, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid userId")
	})

	s.Run("list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.UserView{builder.NewUserBuilder().BuildView()}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, 0)

		var body []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, 0)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
