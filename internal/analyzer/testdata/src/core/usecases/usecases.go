package usecases

type UserEntity struct {
	ID string
}

type UserResponse struct {
	ID string
}

type Result[T any] struct {
	Value T
	Err   error
}

type GetUserUseCase struct{}

func NewGetUserUseCase() *GetUserUseCase {
	return &GetUserUseCase{}
}

func (u *GetUserUseCase) Execute(id string) UserEntity { // want "UseCase 'GetUserUseCase' exposes model object 'UserEntity' in method 'Execute'"
	return UserEntity{ID: id}
}

func (u *GetUserUseCase) Present(id string) (*UserResponse, error) {
	return &UserResponse{ID: id}, nil
}

func (u *GetUserUseCase) reset() {}

type FetchUserUseCase interface {
	Fetch(id string) Result[UserEntity] // want "UseCase 'FetchUserUseCase' exposes model object 'UserEntity' in method 'Fetch'"
	Describe(id string) Result[UserResponse]
}
