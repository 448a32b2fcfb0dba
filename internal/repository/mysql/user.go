package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrUserAlreadyExist
		}
		return result.Error
	}

	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt

	return nil
}

func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	// a map keeps zero values in the UPDATE; struct-based Updates would
	// silently drop a cleared bio or image
	err := m.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userModel.ID).
		Updates(map[string]any{
			"email":    userModel.Email,
			"username": userModel.Username,
			"bio":      userModel.Bio,
			"image":    userModel.Image,
			"password": userModel.Password,
		}).Error
	if isDuplicateEntry(err) {
		return domain.ErrUserAlreadyExist
	}
	return err
}

func (m *userRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	edge := model.Follow{
		FollowerID: followerID.String(),
		FolloweeID: followeeID.String(),
	}
	// re-following is a no-op, the unique pair index absorbs the conflict
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

func (m *userRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	// removing a missing edge is a no-op
	return m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID.String(), followeeID.String()).
		Delete(&model.Follow{}).Error
}

func (m *userRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID.String(), followeeID.String()).
		Count(&count).Error
	return count > 0, err
}

func (m *userRepository) IsFollowingBulk(ctx context.Context, followerID uuid.UUID, followeeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	res := make(map[uuid.UUID]bool, len(followeeIDs))
	if len(followeeIDs) == 0 {
		return res, nil
	}

	ids := make([]string, len(followeeIDs))
	for i := range followeeIDs {
		ids[i] = followeeIDs[i].String()
	}

	var followed []string
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", followerID.String(), ids).
		Pluck("followee_id", &followed).Error
	if err != nil {
		return nil, err
	}

	for _, raw := range followed {
		if id, err := uuid.Parse(raw); err == nil {
			res[id] = true
		}
	}
	return res, nil
}
