package darkstar

import (
	"context"
	"errors"
	"strings"

	"github.com/arcanusdsp/server/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Accounts reads and updates game accounts. Password hashing is done by
// the database's PASSWORD() function so hashes stay compatible with the
// game server's login.
type Accounts struct {
	db       *gorm.DB
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAccounts(db *gorm.DB, logger *zap.Logger) *Accounts {
	return &Accounts{db: db, validate: validator.New(), logger: logger}
}

// FormError is one user-facing message of a rejected form.
type FormError struct {
	Msg string
	Err error
}

func (e *FormError) Error() string { return e.Msg }

func (e *FormError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

func formErr(msg string) error { return &FormError{Msg: msg} }

// FormMessages flattens an error returned by ChangeEmail or
// ChangePassword into its user-facing messages.
func FormMessages(err error) []string {
	var msgs []string
	for _, e := range multierr.Errors(err) {
		var fe *FormError
		if errors.As(e, &fe) {
			msgs = append(msgs, fe.Msg)
		} else {
			msgs = append(msgs, e.Error())
		}
	}
	return msgs
}

const (
	minPasswordLen = 4
	maxPasswordLen = 15
)

// Authenticate checks a login against the stored password hash.
func (s *Accounts) Authenticate(ctx context.Context, login, password string) (*model.Account, error) {
	var accounts []model.Account
	err := s.db.WithContext(ctx).
		Where("login = ? AND password = PASSWORD(?)", login, password).
		Limit(1).Find(&accounts).Error
	if err != nil {
		s.logger.Warn("login query failed", zap.String("login", login), zap.Error(err))
		return nil, composeErr("account", err)
	}
	if len(accounts) == 0 {
		return nil, ErrInvalidCredentials
	}
	if accounts[0].Banned() {
		return nil, ErrBanned
	}
	return &accounts[0], nil
}

func (s *Accounts) ByID(ctx context.Context, accID int64) (*model.Account, error) {
	var accounts []model.Account
	if err := s.db.WithContext(ctx).Where("id = ?", accID).Limit(1).Find(&accounts).Error; err != nil {
		return nil, composeErr("account", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNotFound
	}
	return &accounts[0], nil
}

// ValidatePassword reports ErrInvalidPassword unless password is the
// account's current password.
func (s *Accounts) ValidatePassword(ctx context.Context, accID int64, password string) error {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND password = PASSWORD(?)", accID, password).
		Count(&n).Error
	if err != nil {
		return composeErr("account", err)
	}
	if n == 0 {
		return ErrInvalidPassword
	}
	return nil
}

func (s *Accounts) UpdateEmail(ctx context.Context, accID int64, email string) error {
	res := s.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", accID).Update("email", email)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Accounts) UpdatePassword(ctx context.Context, accID int64, password string) error {
	res := s.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", accID).
		Update("password", gorm.Expr("PASSWORD(?)", password))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type EmailChange struct {
	NewEmail        string
	RepeatEmail     string
	CurrentPassword string
}

// ChangeEmail validates every field of the form, collecting all
// problems, and only updates the account when none were found.
func (s *Accounts) ChangeEmail(ctx context.Context, accID int64, f EmailChange) error {
	var errs error
	if f.NewEmail == "" {
		errs = multierr.Append(errs, formErr("You must enter a new email address."))
	}
	if f.RepeatEmail == "" {
		errs = multierr.Append(errs, formErr("You must enter a new email address. (repeat)"))
	}
	if f.NewEmail != f.RepeatEmail {
		errs = multierr.Append(errs, formErr("New emails do not match."))
	}
	if f.NewEmail != "" && s.validate.Var(f.NewEmail, "email") != nil {
		errs = multierr.Append(errs, formErr("The given email is not a valid email address."))
	}
	errs = multierr.Append(errs, s.checkCurrentPassword(ctx, accID, f.CurrentPassword))
	if errs != nil {
		return errs
	}

	if err := s.UpdateEmail(ctx, accID, f.NewEmail); err != nil {
		s.logger.Warn("email update failed", zap.Int64("accid", accID), zap.Error(err))
		return &FormError{Msg: "Failed to change the account email address.", Err: err}
	}
	return nil
}

type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	RepeatPassword  string
}

// ChangePassword validates the form the same way as ChangeEmail. New
// passwords must be 4 to 15 printable ASCII characters.
func (s *Accounts) ChangePassword(ctx context.Context, accID int64, f PasswordChange) error {
	var errs error
	if f.CurrentPassword == "" {
		errs = multierr.Append(errs, formErr("You must enter your current password."))
	}
	if f.NewPassword == "" {
		errs = multierr.Append(errs, formErr("You must enter a new password."))
	}
	if f.RepeatPassword == "" {
		errs = multierr.Append(errs, formErr("You must enter a new password. (repeat)"))
	}
	if f.NewPassword != f.RepeatPassword {
		errs = multierr.Append(errs, formErr("New passwords do not match."))
	}
	if f.NewPassword != "" {
		errs = multierr.Append(errs, s.checkNewPassword(f.NewPassword))
	}
	if f.CurrentPassword != "" {
		errs = multierr.Append(errs, s.checkCurrentPassword(ctx, accID, f.CurrentPassword))
	}
	if errs != nil {
		return errs
	}

	if err := s.UpdatePassword(ctx, accID, f.NewPassword); err != nil {
		s.logger.Warn("password update failed", zap.Int64("accid", accID), zap.Error(err))
		return &FormError{Msg: "Failed to change the account password.", Err: err}
	}
	return nil
}

var passwordWhitespace = strings.NewReplacer("\t", "", "\r", "", "\n", "")

func (s *Accounts) checkNewPassword(p string) error {
	n := len([]rune(p))
	switch {
	case n < minPasswordLen:
		return formErr("New password is too short!")
	case n > maxPasswordLen:
		return formErr("New password is too long!")
	}
	if stripped := passwordWhitespace.Replace(p); stripped != "" && s.validate.Var(stripped, "printascii") != nil {
		return formErr("New password contains invalid characters.")
	}
	return nil
}

func (s *Accounts) checkCurrentPassword(ctx context.Context, accID int64, password string) error {
	err := s.ValidatePassword(ctx, accID, password)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrInvalidPassword) {
		s.logger.Warn("password check failed", zap.Int64("accid", accID), zap.Error(err))
	}
	return &FormError{Msg: "Invalid account password.", Err: err}
}
