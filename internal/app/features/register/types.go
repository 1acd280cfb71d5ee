// internal/app/features/register/types.go
package register

import "github.com/jcollier/memberportal/internal/app/system/formutil"

// formData is the view model for the registration form, echoing the raw
// values back when the submission is rejected.
type formData struct {
	formutil.Base

	Name    string
	Surname string
	Mobile  string
	Email   string
}
