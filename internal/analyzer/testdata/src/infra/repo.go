package infra

type UserEntity struct {
	ID string
}

type UserRepository struct{}

func (r *UserRepository) Get(id string) UserEntity {
	return UserEntity{ID: id}
}
