package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserSuccess(t *testing.T) {
	var got CreateUserInput

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tenants/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{
			Email:     got.Email,
			FirstName: got.FirstName,
			LastName:  got.LastName,
			Cellphone: got.Cellphone,
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	user, err := client.CreateUser(context.Background(), CreateUserInput{
		Email:     "a@b.com",
		FirstName: "Jorge",
		LastName:  "William",
		Password:  "Senha123!",
		Cellphone: "11912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "11912345678", got.Cellphone, "cellphone travels digits-only")
}

func TestCreateUserStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(APIError{
			Message: "Email já cadastrado",
			Code:    "EMAIL_ALREADY_EXISTS",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateUser(context.Background(), CreateUserInput{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, "Email já cadastrado", err.Error(), "user create surfaces the raw backend message")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", apiErr.Code)
}

func TestCreateUserUnstructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateUser(context.Background(), CreateUserInput{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, "Erro ao criar usuário.", err.Error())
}

func TestCreateUserNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused

	client := New(srv.URL)
	_, err := client.CreateUser(context.Background(), CreateUserInput{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, "Erro ao criar usuário.", err.Error())
}

func TestVerifyEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants/verify-email", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["code"] != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIError{Message: "Código inválido", Code: "INVALID_CODE"})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL)

	assert.NoError(t, client.VerifyEmail(context.Background(), "a@b.com", "123456"))

	err := client.VerifyEmail(context.Background(), "a@b.com", "000000")
	require.Error(t, err)
	assert.Equal(t, "Código inválido", err.Error())
}

func TestResendCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants/resend-code", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL)
	assert.NoError(t, client.ResendCode(context.Background(), "a@b.com"))
}

func TestCreateBarbershopSuccess(t *testing.T) {
	var got CreateBarbershopInput

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants/barbershops/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	client := New(srv.URL)
	created, err := client.CreateBarbershop(context.Background(), CreateBarbershopInput{
		Name:           "Barbearia do Jorge",
		Phone:          "(11) 91234-5678",
		Email:          "contato@barbearia.com",
		UserEmail:      "a@b.com",
		FoundationDate: FoundationDate{Month: 3, Year: 2015},
		Address: BarbershopAddress{
			ZipCode: "01310100",
			Street:  "Avenida Paulista",
			City:    "Bela Vista",
			State:   "SP",
		},
		BusinessHours: BarbershopHours{OpenTime: "09:00", CloseTime: "19:00"},
		Expectation:   "Organizar a agenda",
		FoundUsOn:     "indicacao",
	})

	require.NoError(t, err)
	assert.Equal(t, "Barbearia do Jorge", created.Name)
	assert.Equal(t, "a@b.com", got.UserEmail)
	assert.Equal(t, 3, got.FoundationDate.Month)
}

func TestCreateBarbershopErrorAppendsCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(APIError{
			Message: "Barbearia já registrada",
			Code:    "BARBERSHOP_EXISTS",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateBarbershop(context.Background(), CreateBarbershopInput{Name: "X"})

	require.Error(t, err)
	assert.Equal(t, "Barbearia já registrada (code: BARBERSHOP_EXISTS)", err.Error())
}

func TestCreateBarbershopErrorWithoutCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIError{Message: "Dados incompletos"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateBarbershop(context.Background(), CreateBarbershopInput{})

	require.Error(t, err)
	assert.Equal(t, "Dados incompletos", err.Error(), "no code, no suffix")
}

func TestCreateBarbershopFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreateBarbershop(context.Background(), CreateBarbershopInput{})

	require.Error(t, err)
	assert.Equal(t, "Erro ao criar barbearia", err.Error())
}

func TestLoggingTransportPreservesBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in CreateUserInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "Senha123!", in.Password, "interceptor must not consume the request body")

		json.NewEncoder(w).Encode(User{Email: in.Email})
	}))
	defer srv.Close()

	client := New(srv.URL, WithLogging())
	user, err := client.CreateUser(context.Background(), CreateUserInput{
		Email:    "a@b.com",
		Password: "Senha123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}
