// Package account registers users and checks their credentials against the
// registered users file. Passwords are stored as bcrypt hashes.
package account

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrMissingCredentials  = errors.New("please enter both username and password")
	ErrNoUsers             = errors.New("no registered users found, please create an account first")
	ErrInvalidRegistration = errors.New("invalid registration")
)

const minPasswordLength = 6

var header = []string{"Name", "Password", "Email"}

// User is a registered account. The password hash never leaves the package.
type User struct {
	Name  string
	Email string
	Admin bool

	hash string
}

// Registration is the sign-up form.
type Registration struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Validate applies the sign-up rules in order and reports the first failure.
// Surrounding spaces are not part of the password, here or at login.
func (r Registration) Validate() error {
	fail := func(msg string) error {
		return fmt.Errorf("%w: %s", ErrInvalidRegistration, msg)
	}

	email := strings.TrimSpace(r.Email)
	password := strings.TrimSpace(r.Password)
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fail("name cannot be empty")
	case email == "":
		return fail("email cannot be empty")
	case !strings.Contains(email, "@") || !strings.Contains(email, "."):
		return fail("please enter a valid email")
	case password == "":
		return fail("password cannot be empty")
	case len(password) < minPasswordLength:
		return fail(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	case password != strings.TrimSpace(r.Confirm):
		return fail("passwords do not match")
	}
	return nil
}

// Store is the registered users CSV file.
type Store struct {
	path   string
	cost   int
	admins []string
}

// Option configures a Store.
type Option func(*Store)

// WithCost sets the bcrypt cost for new passwords.
func WithCost(cost int) Option {
	return func(s *Store) { s.cost = cost }
}

// WithAdmins marks accounts with one of emails as administrators.
func WithAdmins(emails []string) Option {
	return func(s *Store) {
		for _, e := range emails {
			s.admins = append(s.admins, strings.ToLower(strings.TrimSpace(e)))
		}
	}
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: path, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates r and appends the new account.
func (s *Store) Register(r Registration) (User, error) {
	if err := r.Validate(); err != nil {
		return User{}, err
	}

	users, err := s.load()
	if err != nil && !errors.Is(err, ErrNoUsers) {
		return User{}, err
	}

	email := strings.TrimSpace(r.Email)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(r.Password)), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := User{Name: strings.TrimSpace(r.Name), Email: email, hash: string(hash)}
	if err := s.append(u, !s.exists()); err != nil {
		return User{}, err
	}
	u.Admin = s.isAdmin(u.Email)
	return u, nil
}

// Authenticate returns the account matching name and password.
func (s *Store) Authenticate(name, password string) (User, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)
	if name == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	users, err := s.load()
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Name != name {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.hash), []byte(password)) == nil {
			return u, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// List returns every registered account in file order.
func (s *Store) List() ([]User, error) {
	users, err := s.load()
	if errors.Is(err, ErrNoUsers) {
		return nil, nil
	}
	return users, err
}

func (s *Store) isAdmin(email string) bool {
	return slices.Contains(s.admins, strings.ToLower(email))
}

func (s *Store) exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *Store) load() ([]User, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoUsers
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open users: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var users []User
	for first := true; ; first = false {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read users: %w", err)
		}
		if first && slices.Equal(rec, header) {
			continue
		}
		if len(rec) < 3 {
			continue
		}
		users = append(users, User{
			Name:  rec[0],
			Email: rec[2],
			Admin: s.isAdmin(rec[2]),
			hash:  rec[1],
		})
	}
	return users, nil
}

func (s *Store) append(u User, writeHeader bool) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open users: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write users: %w", err)
		}
	}
	if err := w.Write([]string{u.Name, u.hash, u.Email}); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}
