package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"user-directory-api/internal/i18n"
	"user-directory-api/internal/models"
	"user-directory-api/internal/realtime"
	"user-directory-api/internal/testutil"
	"user-directory-api/internal/usercache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testMessagesEN = `auth.login_success: Login successful
auth.invalid_credentials: Invalid username or password
auth.username_taken: Username is already taken
user.registered: Welcome aboard, {name}!
user.not_found: User not found
`

const testMessagesID = `auth.login_success: Login berhasil
user.not_found: Pengguna tidak ditemukan
`

func newTestHandlers(t *testing.T) (*Handlers, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(testMessagesEN), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "id.yaml"), []byte(testMessagesID), 0o644))
	catalog, err := i18n.LoadCatalog(dir)
	require.NoError(t, err)
	translator, err := i18n.NewTranslator(catalog, "en", 100)
	require.NoError(t, err)

	users, err := usercache.New(100)
	require.NoError(t, err)

	return New(db, users, translator, realtime.NewHub()), db
}

// seedUser inserts a user with a bcrypt-hashed password straight into the DB.
func seedUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: username,
		Locale:      "en",
		Password:    string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
