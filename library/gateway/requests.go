package gateway

type registerStudentRequest struct {
	ID           string `json:"id"             validate:"omitempty,uuid"`
	Email        string `json:"email"          validate:"required,email"`
	Password     string `json:"password"       validate:"required,min=6"`
	FirstName    string `json:"first_name"     validate:"required"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name"      validate:"required"`
	GradeLevelID string `json:"grade_level_id" validate:"omitempty,uuid"`
}

type updateStudentRequest struct {
	Email        *string `json:"email"          validate:"omitempty,email"`
	Password     *string `json:"password"       validate:"omitempty,min=6"`
	FirstName    *string `json:"first_name"     validate:"omitempty,min=1"`
	MiddleName   *string `json:"middle_name"`
	LastName     *string `json:"last_name"      validate:"omitempty,min=1"`
	GradeLevelID *string `json:"grade_level_id" validate:"omitempty,uuid"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type registerAdminRequest struct {
	ID        string `json:"id"         validate:"omitempty,uuid"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Role      string `json:"role"`
}

type addBookRequest struct {
	ID              string `json:"id"               validate:"omitempty,uuid"`
	ISBN            string `json:"isbn"             validate:"required"`
	Title           string `json:"title"            validate:"required"`
	Author          string `json:"author"           validate:"required"`
	Publisher       string `json:"publisher"`
	PublicationYear uint   `json:"publication_year"`
	CategoryID      string `json:"category_id"      validate:"omitempty,uuid"`
	TotalCopies     *int   `json:"total_copies"`
}

type updateBookRequest struct {
	ISBN            *string `json:"isbn"             validate:"omitempty,min=1"`
	Title           *string `json:"title"            validate:"omitempty,min=1"`
	Author          *string `json:"author"           validate:"omitempty,min=1"`
	Publisher       *string `json:"publisher"`
	PublicationYear *uint   `json:"publication_year"`
	CategoryID      *string `json:"category_id"      validate:"omitempty,uuid"`
	TotalCopies     *int    `json:"total_copies"`
}

type requestLoanRequest struct {
	ID     string `json:"id"      validate:"omitempty,uuid"`
	BookID string `json:"book_id" validate:"required,uuid"`
}

type nameRequest struct {
	ID   string `json:"id"   validate:"omitempty,uuid"`
	Name string `json:"name" validate:"required"`
}
