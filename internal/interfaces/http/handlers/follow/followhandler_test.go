package follow

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litrevu/internal/application/user/usecases"
	"litrevu/internal/interfaces/http/handlers/testutil"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/errors"
)

type mockFollowUC struct {
	result *usecases.FollowUserResult
	err    error
	gotCmd usecases.FollowUserCommand
}

func (m *mockFollowUC) Execute(ctx context.Context, cmd usecases.FollowUserCommand) (*usecases.FollowUserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUnfollowUC struct {
	result *usecases.UnfollowUserResult
	err    error
	gotCmd usecases.UnfollowUserCommand
}

func (m *mockUnfollowUC) Execute(ctx context.Context, cmd usecases.UnfollowUserCommand) (*usecases.UnfollowUserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListFollowingsUC struct {
	result *usecases.ListFollowingsResult
	err    error
}

func (m *mockListFollowingsUC) Execute(ctx context.Context, query usecases.ListFollowingsQuery) (*usecases.ListFollowingsResult, error) {
	return m.result, m.err
}

func newTestFollowHandler(
	followUC usecases.FollowUserExecutor,
	unfollowUC usecases.UnfollowUserExecutor,
	listUC usecases.ListFollowingsExecutor,
) *FollowHandler {
	return NewFollowHandler(followUC, unfollowUC, listUC, config.CookieConfig{})
}

func TestFollowHandler_List(t *testing.T) {
	mockUC := &mockListFollowingsUC{
		result: &usecases.ListFollowingsResult{
			Followings: []usecases.FollowedUserDTO{{ID: 2, Username: "bob"}},
			Followers:  []usecases.FollowedUserDTO{{ID: 3, Username: "carol"}},
		},
	}
	handler := newTestFollowHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/followings/")
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.List, c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"page":"followings"`)
	assert.Contains(t, string(resp.Data), `"username":"bob"`)
	assert.Contains(t, string(resp.Data), `"username":"carol"`)
}

func TestFollowHandler_Follow_Success(t *testing.T) {
	mockUC := &mockFollowUC{
		result: &usecases.FollowUserResult{FollowedID: 2, FollowedUsername: "bob"},
	}
	handler := newTestFollowHandler(mockUC, nil, nil)

	form := url.Values{}
	form.Set("username", "bob")
	c, w := testutil.NewFormContext(http.MethodPost, "/followings/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.Follow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/followings/", testutil.Location(w))
	assert.Equal(t, usecases.FollowUserCommand{ViewerID: 9, TargetUsername: "bob"}, mockUC.gotCmd)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestFollowHandler_Follow_AlreadyFollowing(t *testing.T) {
	mockUC := &mockFollowUC{
		result: &usecases.FollowUserResult{FollowedID: 2, FollowedUsername: "bob", AlreadyFollowing: true},
	}
	handler := newTestFollowHandler(mockUC, nil, nil)

	form := url.Values{}
	form.Set("username", "bob")
	c, w := testutil.NewFormContext(http.MethodPost, "/followings/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.Follow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestFollowHandler_Follow_UnknownUser(t *testing.T) {
	mockUC := &mockFollowUC{
		err: errors.NewNotFoundError("no user with that username"),
	}
	handler := newTestFollowHandler(mockUC, nil, nil)

	form := url.Values{}
	form.Set("username", "ghost")
	c, w := testutil.NewFormContext(http.MethodPost, "/followings/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.Follow, c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowHandler_Follow_Self(t *testing.T) {
	mockUC := &mockFollowUC{
		result: &usecases.FollowUserResult{FollowedID: 9, FollowedUsername: "alice", SelfFollow: true},
	}
	handler := newTestFollowHandler(mockUC, nil, nil)

	form := url.Values{}
	form.Set("username", "alice")
	c, w := testutil.NewFormContext(http.MethodPost, "/followings/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.Follow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/followings/", testutil.Location(w))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestFollowHandler_Unfollow_Self(t *testing.T) {
	mockUC := &mockUnfollowUC{
		result: &usecases.UnfollowUserResult{TargetID: 9, SelfUnfollow: true},
	}
	handler := newTestFollowHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/followings/unfollow/9/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "user_id", "9")

	testutil.ServeHandler(handler.Unfollow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/followings/", testutil.Location(w))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestFollowHandler_Follow_MissingUsername(t *testing.T) {
	handler := newTestFollowHandler(&mockFollowUC{}, nil, nil)

	c, w := testutil.NewFormContext(http.MethodPost, "/followings/", url.Values{})
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.Follow, c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowHandler_Unfollow_Success(t *testing.T) {
	mockUC := &mockUnfollowUC{
		result: &usecases.UnfollowUserResult{TargetID: 2, WasFollowing: true},
	}
	handler := newTestFollowHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/followings/unfollow/2/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "user_id", "2")

	testutil.ServeHandler(handler.Unfollow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/followings/", testutil.Location(w))
	assert.Equal(t, usecases.UnfollowUserCommand{ViewerID: 9, TargetID: 2}, mockUC.gotCmd)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestFollowHandler_Unfollow_WasNotFollowing(t *testing.T) {
	mockUC := &mockUnfollowUC{
		result: &usecases.UnfollowUserResult{TargetID: 2, WasFollowing: false},
	}
	handler := newTestFollowHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/followings/unfollow/2/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "user_id", "2")

	testutil.ServeHandler(handler.Unfollow, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestFollowHandler_Unfollow_BadID(t *testing.T) {
	handler := newTestFollowHandler(nil, &mockUnfollowUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/followings/unfollow/abc/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "user_id", "abc")

	testutil.ServeHandler(handler.Unfollow, c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
