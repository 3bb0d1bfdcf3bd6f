package checkout

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
)

func formFromRequest(r *http.Request) (CheckoutForm, error) {
	err := r.ParseForm()
	if err != nil {
		return CheckoutForm{}, myerrors.NewInvalidInputError(err)
	}
	return formFromValues(r.Form)
}

func formFromValues(values url.Values) (CheckoutForm, error) {
	form := CheckoutForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return form, nil
}

func (f CheckoutForm) ToValues() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(f)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}
