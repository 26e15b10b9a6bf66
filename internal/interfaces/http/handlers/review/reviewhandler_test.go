package review

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litrevu/internal/application/review/usecases"
	ticketusecases "litrevu/internal/application/ticket/usecases"
	"litrevu/internal/interfaces/http/handlers/testutil"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/errors"
)

type mockCreateReviewUC struct {
	result *usecases.CreateReviewResult
	err    error
	gotCmd usecases.CreateReviewCommand
}

func (m *mockCreateReviewUC) Execute(ctx context.Context, cmd usecases.CreateReviewCommand) (*usecases.CreateReviewResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockCreateCombinedUC struct {
	result *usecases.CreateTicketWithReviewResult
	err    error
	gotCmd usecases.CreateTicketWithReviewCommand
}

func (m *mockCreateCombinedUC) Execute(ctx context.Context, cmd usecases.CreateTicketWithReviewCommand) (*usecases.CreateTicketWithReviewResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetDetailUC struct {
	result *usecases.ReviewDetailDTO
	err    error
}

func (m *mockGetDetailUC) Execute(ctx context.Context, query usecases.GetReviewDetailQuery) (*usecases.ReviewDetailDTO, error) {
	return m.result, m.err
}

type mockUpdateReviewUC struct {
	result *usecases.UpdateReviewResult
	err    error
	gotCmd usecases.UpdateReviewCommand
}

func (m *mockUpdateReviewUC) Execute(ctx context.Context, cmd usecases.UpdateReviewCommand) (*usecases.UpdateReviewResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteReviewUC struct {
	err    error
	called bool
}

func (m *mockDeleteReviewUC) Execute(ctx context.Context, cmd usecases.DeleteReviewCommand) error {
	m.called = true
	return m.err
}

type mockAddCommentUC struct {
	result *usecases.AddCommentResult
	err    error
	gotCmd usecases.AddCommentCommand
}

func (m *mockAddCommentUC) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketusecases.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketusecases.TicketDTO, error) {
	return m.result, m.err
}

type mockImageStore struct {
	name string
	err  error
}

func (m *mockImageStore) Save(file *multipart.FileHeader) (string, error) {
	return m.name, m.err
}

type handlerMocks struct {
	create   *mockCreateReviewUC
	combined *mockCreateCombinedUC
	detail   *mockGetDetailUC
	update   *mockUpdateReviewUC
	delete   *mockDeleteReviewUC
	comment  *mockAddCommentUC
	ticket   *mockGetTicketUC
}

func newTestReviewHandler() (*ReviewHandler, *handlerMocks) {
	m := &handlerMocks{
		create:   &mockCreateReviewUC{result: &usecases.CreateReviewResult{ReviewID: 5, TicketID: 3}},
		combined: &mockCreateCombinedUC{result: &usecases.CreateTicketWithReviewResult{TicketID: 3, ReviewID: 5}},
		detail:   &mockGetDetailUC{},
		update:   &mockUpdateReviewUC{result: &usecases.UpdateReviewResult{ReviewID: 5, TicketID: 3}},
		delete:   &mockDeleteReviewUC{},
		comment:  &mockAddCommentUC{result: &usecases.AddCommentResult{CommentID: 12, ReviewID: 5}},
		ticket:   &mockGetTicketUC{},
	}
	handler := NewReviewHandler(
		m.create, m.combined, m.detail, m.update, m.delete, m.comment, m.ticket,
		&mockImageStore{}, config.CookieConfig{},
	)
	return handler, m
}

func TestReviewHandler_CreateForTicket_Success(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("rating", "4")
	form.Set("headline", "Solid")
	form.Set("body", "Worth reading.")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/3/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "ticket_id", "3")

	testutil.ServeHandler(handler.CreateForTicket, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home/", testutil.Location(w))
	assert.Equal(t, uint(3), mocks.create.gotCmd.TicketID)
	assert.Equal(t, uint(9), mocks.create.gotCmd.AuthorID)
	assert.Equal(t, 4, mocks.create.gotCmd.Rating)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestReviewHandler_CreateForTicket_ZeroRating(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("rating", "0")
	form.Set("headline", "Avoid")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/3/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "ticket_id", "3")

	testutil.ServeHandler(handler.CreateForTicket, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, mocks.create.gotCmd.Rating)
}

func TestReviewHandler_CreateForTicket_MissingRating(t *testing.T) {
	handler, _ := newTestReviewHandler()

	form := url.Values{}
	form.Set("headline", "Solid")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/3/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "ticket_id", "3")

	testutil.ServeHandler(handler.CreateForTicket, c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_CreateForTicket_AlreadyReviewed(t *testing.T) {
	handler, mocks := newTestReviewHandler()
	mocks.create.result = &usecases.CreateReviewResult{TicketID: 3, AlreadyReviewed: true}

	form := url.Values{}
	form.Set("rating", "4")
	form.Set("headline", "Solid")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/3/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "ticket_id", "3")

	testutil.ServeHandler(handler.CreateForTicket, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home/", testutil.Location(w))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestReviewHandler_CreateWithTicket_Success(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("title", "Dune")
	form.Set("description", "The new translation.")
	form.Set("rating", "5")
	form.Set("headline", "A classic")
	form.Set("body", "Still holds up.")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.CreateWithTicket, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home/", testutil.Location(w))
	assert.Equal(t, "Dune", mocks.combined.gotCmd.Title)
	assert.Equal(t, 5, mocks.combined.gotCmd.Rating)
	assert.Equal(t, uint(9), mocks.combined.gotCmd.AuthorID)
}

func TestReviewHandler_CreateWithTicket_MissingTitle(t *testing.T) {
	handler, _ := newTestReviewHandler()

	form := url.Values{}
	form.Set("rating", "5")
	form.Set("headline", "A classic")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/create/", form)
	testutil.SetAuthContext(c, 9, "alice")

	testutil.ServeHandler(handler.CreateWithTicket, c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_Detail_Success(t *testing.T) {
	handler, mocks := newTestReviewHandler()
	mocks.detail.result = &usecases.ReviewDetailDTO{
		ID:          5,
		TicketID:    3,
		TicketTitle: "Dune",
		Rating:      4,
		Stars:       "★★★★",
		Headline:    "Solid",
		IsOwner:     false,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/reviews/5/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.Detail, c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"page":"review_detail"`)
	assert.Contains(t, string(resp.Data), `"ticket_title":"Dune"`)
}

func TestReviewHandler_Detail_NotFound(t *testing.T) {
	handler, mocks := newTestReviewHandler()
	mocks.detail.err = errors.NewNotFoundError("review not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/reviews/404/")
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "404")

	testutil.ServeHandler(handler.Detail, c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewHandler_AddComment_Success(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("content", "Agreed on all points.")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/5/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.AddComment, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/reviews/5/", testutil.Location(w))
	assert.Equal(t, uint(5), mocks.comment.gotCmd.ReviewID)
	assert.Equal(t, "Agreed on all points.", mocks.comment.gotCmd.Content)
}

func TestReviewHandler_AddComment_BlankContent(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/5/", url.Values{})
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.AddComment, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "", mocks.comment.gotCmd.Content)
}

func TestReviewHandler_Edit_Update(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("action", "update")
	form.Set("rating", "2")
	form.Set("headline", "Changed my mind")
	form.Set("body", "Second read was worse.")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/update/5/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.Edit, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/", testutil.Location(w))
	assert.Equal(t, uint(5), mocks.update.gotCmd.ReviewID)
	assert.Equal(t, 2, mocks.update.gotCmd.Rating)
	assert.Equal(t, "Changed my mind", mocks.update.gotCmd.Headline)
}

func TestReviewHandler_Edit_UpdateMissingRating(t *testing.T) {
	handler, _ := newTestReviewHandler()

	form := url.Values{}
	form.Set("action", "update")
	form.Set("headline", "No rating given")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/update/5/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.Edit, c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_Edit_Delete(t *testing.T) {
	handler, mocks := newTestReviewHandler()

	form := url.Values{}
	form.Set("action", "delete")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/update/5/", form)
	testutil.SetAuthContext(c, 9, "alice")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.Edit, c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/", testutil.Location(w))
	assert.True(t, mocks.delete.called)
}

func TestReviewHandler_Edit_NotOwner(t *testing.T) {
	handler, mocks := newTestReviewHandler()
	mocks.update.err = errors.NewForbiddenError("only the review author can edit it")

	form := url.Values{}
	form.Set("action", "update")
	form.Set("rating", "1")
	form.Set("headline", "Hijacked")
	c, w := testutil.NewFormContext(http.MethodPost, "/reviews/update/5/", form)
	testutil.SetAuthContext(c, 11, "mallory")
	testutil.SetURLParam(c, "review_id", "5")

	testutil.ServeHandler(handler.Edit, c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
