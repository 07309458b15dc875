package store

import (
	"errors"

	"catering-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore maps chat identities to stored customer profiles.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// GetOrCreate inserts the user on first sight; otherwise it refreshes
// username and first name unconditionally (last seen wins).
func (s *UserStore) GetOrCreate(id int64, username, firstName string) error {
	user := model.User{ID: id, Username: username, FirstName: firstName}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name"}),
	}).Create(&user).Error
}

// Phone returns the stored phone number, empty if the user has none yet.
func (s *UserStore) Phone(id int64) (string, error) {
	var user model.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Phone, nil
}

// SetPhone overwrites the stored phone number. Validation beyond a minimum
// length is the conversation layer's concern, not this store's.
func (s *UserStore) SetPhone(id int64, phone string) error {
	return s.db.Model(&model.User{}).Where("id = ?", id).Update("phone", phone).Error
}
