package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const segredoTeste = "segredo-de-teste"

func tokenCom(t *testing.T, papel string, ttl time.Duration) string {
	t.Helper()
	claims := JWTClaims{
		UserID:    "u-1",
		EmpresaID: "e-1",
		Email:     "maria@tempero.app",
		Papel:     papel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(segredoTeste))
	require.NoError(t, err)
	return s
}

func rotaProtegida(papeis ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grupo := r.Group("/", JWTAuth(segredoTeste))
	if len(papeis) > 0 {
		grupo.Use(RequirePapel(papeis...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"empresa": claims.EmpresaID})
	})
	return r
}

func chamar(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthSemToken(t *testing.T) {
	w := chamar(rotaProtegida(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenValido(t *testing.T) {
	w := chamar(rotaProtegida(), tokenCom(t, "operador", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "e-1")
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	w := chamar(rotaProtegida(), tokenCom(t, "operador", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthAssinaturaErrada(t *testing.T) {
	claims := JWTClaims{Papel: "admin"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outro-segredo"))
	require.NoError(t, err)

	w := chamar(rotaProtegida(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePapel(t *testing.T) {
	r := rotaProtegida("admin")

	w := chamar(r, tokenCom(t, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w = chamar(r, tokenCom(t, "operador", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
