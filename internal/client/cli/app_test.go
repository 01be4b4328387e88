package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	token string

	registerErr error
	loginErr    error

	books   []models.Book
	authors []models.Author

	addedTitle    string
	addedISBN     string
	addedAuthorID int32
	addedPrice    float64
	addedStock    int32
}

func (f *fakeAPI) Register(ctx context.Context, email, password string) (string, error) {
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return "User registered successfully", nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = "tok"
	return "tok", nil
}

func (f *fakeAPI) Books(ctx context.Context) ([]models.Book, error)     { return f.books, nil }
func (f *fakeAPI) Authors(ctx context.Context) ([]models.Author, error) { return f.authors, nil }

func (f *fakeAPI) AddBook(ctx context.Context, title, isbn string, authorID int32, price float64, stock int32) (*models.Book, error) {
	f.addedTitle = title
	f.addedISBN = isbn
	f.addedAuthorID = authorID
	f.addedPrice = price
	f.addedStock = stock
	return &models.Book{ID: 7, Title: title}, nil
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) Token() string         { return f.token }

func silenceOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestApp_LoginSetsUserName(t *testing.T) {
	silenceOutput(t)
	stubPassword(t, "Passw0rd!")

	api := &fakeAPI{}
	a := &App{api: api, reader: bufio.NewReader(strings.NewReader("user@example.com\n"))}

	err := a.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", a.userName)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(user@example.com)", a.getStatus())
}

func TestApp_LoginFailureKeepsLoggedOut(t *testing.T) {
	silenceOutput(t)
	stubPassword(t, "wrong")

	api := &fakeAPI{loginErr: errors.New("invalid login attempt")}
	a := &App{api: api, reader: bufio.NewReader(strings.NewReader("user@example.com\n"))}

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.getStatus())
}

func TestApp_RegisterPrintsServerMessage(t *testing.T) {
	lines := silenceOutput(t)
	stubPassword(t, "Passw0rd!")

	api := &fakeAPI{}
	a := &App{api: api, reader: bufio.NewReader(strings.NewReader("new@example.com\n"))}

	err := a.Register(context.Background())
	require.NoError(t, err)
	assert.Contains(t, *lines, "User registered successfully")
}

func TestApp_AddBookRequiresLogin(t *testing.T) {
	silenceOutput(t)

	api := &fakeAPI{}
	a := &App{api: api, reader: bufio.NewReader(strings.NewReader(""))}

	err := a.AddBook(context.Background())
	require.NoError(t, err)
	assert.Empty(t, api.addedTitle)
}

func TestApp_AddBookSendsAllFields(t *testing.T) {
	silenceOutput(t)

	api := &fakeAPI{token: "tok"}
	input := strings.Join([]string{"The Dispossessed", "978-0061054884", "1", "15.99", "3"}, "\n") + "\n"
	a := &App{api: api, reader: bufio.NewReader(strings.NewReader(input))}

	err := a.AddBook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "The Dispossessed", api.addedTitle)
	assert.Equal(t, "978-0061054884", api.addedISBN)
	assert.Equal(t, int32(1), api.addedAuthorID)
	assert.Equal(t, 15.99, api.addedPrice)
	assert.Equal(t, int32(3), api.addedStock)
}

func TestApp_LogoutClearsToken(t *testing.T) {
	silenceOutput(t)

	api := &fakeAPI{token: "tok"}
	a := &App{api: api, userName: "user@example.com"}

	err := a.Logout(context.Background())
	require.NoError(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.userName)
}
