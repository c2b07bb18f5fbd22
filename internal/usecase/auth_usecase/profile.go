package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/repository"
)

// プロフィール更新の入力（氏名・電話のみ変更可）
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
}

var (
	ErrProfileUserNotFound = errors.New("user not found")
	ErrInvalidProfileInput = errors.New("invalid profile input")
)

var profileNameRe = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{024F} '-]{2,50}$`)
var profilePhoneRe = regexp.MustCompile(`^[0-9+\-() ]{10,15}$`)

type ProfileUsecase struct {
	userRepo repository.UserRepository
}

func NewProfileUsecase(userRepo repository.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

func (u *ProfileUsecase) Get(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, ErrProfileUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return *user, nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, in UpdateProfileInput) (model.User, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	phone := strings.TrimSpace(in.Phone)

	if !profileNameRe.MatchString(first) || !profileNameRe.MatchString(last) {
		return model.User{}, ErrInvalidProfileInput
	}
	if phone != "" && !profilePhoneRe.MatchString(phone) {
		return model.User{}, ErrInvalidProfileInput
	}

	err := u.userRepo.UpdateProfile(ctx, userID, first, last, phone)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, ErrProfileUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}

	return u.Get(ctx, userID)
}
