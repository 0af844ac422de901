package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	// Navigation
	KeyFeed        = "feed"
	KeyProfile     = "profile"
	KeyAccount     = "account"
	KeyPreferences = "preferences"
	KeyLogout      = "logout"
	KeySearch      = "search"

	// Authentication
	KeyLogin              = "login"
	KeyRegister           = "register"
	KeyEmail              = "email"
	KeyPassword           = "password"
	KeyConfirmPassword    = "confirm_password"
	KeyName               = "name"
	KeyNickname           = "nickname"
	KeyPhone              = "phone"
	KeyForgotPassword     = "forgot_password"
	KeyResetPassword      = "reset_password"
	KeyNewPassword        = "new_password"
	KeyCheckEmail         = "check_email"
	KeyNoAccountYet       = "no_account_yet"
	KeyAlreadyRegistered  = "already_registered"
	KeyBackToLogin        = "back_to_login"
	KeyAccountCreated     = "account_created"
	KeyPasswordUpdated    = "password_updated"
	KeyInvalidCredentials = "invalid_credentials"
	KeyEmailTaken         = "email_taken"
	KeyNicknameTaken      = "nickname_taken"
	KeyUserExists         = "user_exists"
	KeyEmailNotFound      = "email_not_found"

	// Feed
	KeyComposePlaceholder = "compose_placeholder"
	KeyPublish            = "publish"
	KeyRetry              = "retry"
	KeyLoadingFeed        = "loading_feed"
	KeyFeedEmpty          = "feed_empty"
	KeyFeedFailed         = "feed_failed"
	KeyNoResults          = "no_results"

	// Posts
	KeyLike              = "like"
	KeyReact             = "react"
	KeyEdit              = "edit"
	KeyDelete            = "delete"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyAttachImage       = "attach_image"
	KeyRemoveImage       = "remove_image"
	KeyConfirmDeletePost = "confirm_delete_post"

	// Profile
	KeyMemberSince  = "member_since"
	KeyViews        = "views"
	KeyPosts        = "posts"
	KeyUsersSection = "users_section"
	KeyDescription  = "description"

	// Account settings
	KeyUploadAvatar         = "upload_avatar"
	KeySaveChanges          = "save_changes"
	KeyProfileUpdated       = "profile_updated"
	KeyDeleteAccount        = "delete_account"
	KeyConfirmDeleteAccount = "confirm_delete_account"

	// Preferences
	KeyBackendURL          = "backend_url"
	KeyRequestTimeout      = "request_timeout"
	KeyLanguage            = "language"
	KeyShuffleFeed         = "shuffle_feed"
	KeyConfirmBeforeDelete = "confirm_before_delete"
	KeySettingsSaved       = "settings_saved"

	// Errors
	KeyGenericError = "generic_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "Red Social",

		KeyFeed:        "Feed",
		KeyProfile:     "Profile",
		KeyAccount:     "Account",
		KeyPreferences: "Preferences",
		KeyLogout:      "Log out",
		KeySearch:      "Search posts or people",

		KeyLogin:              "Log in",
		KeyRegister:           "Sign up",
		KeyEmail:              "Email",
		KeyPassword:           "Password",
		KeyConfirmPassword:    "Confirm password",
		KeyName:               "Name",
		KeyNickname:           "Nickname",
		KeyPhone:              "Phone (optional)",
		KeyForgotPassword:     "Forgot your password?",
		KeyResetPassword:      "Reset password",
		KeyNewPassword:        "New password",
		KeyCheckEmail:         "Verify email",
		KeyNoAccountYet:       "Don't have an account? Sign up",
		KeyAlreadyRegistered:  "Already have an account? Log in",
		KeyBackToLogin:        "Back to login",
		KeyAccountCreated:     "Account created, you can log in now",
		KeyPasswordUpdated:    "Password updated, log in with your new password",
		KeyInvalidCredentials: "Wrong email or password",
		KeyEmailTaken:         "That email is already registered",
		KeyNicknameTaken:      "That nickname is already taken",
		KeyUserExists:         "A user with that email or nickname already exists",
		KeyEmailNotFound:      "No account found for that email",

		KeyComposePlaceholder: "What's on your mind?",
		KeyPublish:            "Publish",
		KeyRetry:              "Retry",
		KeyLoadingFeed:        "Loading posts...",
		KeyFeedEmpty:          "Nothing here yet. Be the first to post!",
		KeyFeedFailed:         "Could not load the feed",
		KeyNoResults:          "No posts match your search",

		KeyLike:              "Like",
		KeyReact:             "React",
		KeyEdit:              "Edit",
		KeyDelete:            "Delete",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyAttachImage:       "Attach image",
		KeyRemoveImage:       "Remove image",
		KeyConfirmDeletePost: "Delete this post? This cannot be undone.",

		KeyMemberSince:  "Member since",
		KeyViews:        "Views",
		KeyPosts:        "Posts",
		KeyUsersSection: "Community members",
		KeyDescription:  "Description",

		KeyUploadAvatar:         "Change avatar",
		KeySaveChanges:          "Save changes",
		KeyProfileUpdated:       "Profile updated",
		KeyDeleteAccount:        "Delete account",
		KeyConfirmDeleteAccount: "Delete your account and all your posts? This cannot be undone.",

		KeyBackendURL:          "Backend URL",
		KeyRequestTimeout:      "Request timeout (seconds)",
		KeyLanguage:            "Language",
		KeyShuffleFeed:         "Shuffle feed order",
		KeyConfirmBeforeDelete: "Ask before deleting",
		KeySettingsSaved:       "Settings saved successfully!",

		KeyGenericError: "Something went wrong, please try again",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle: "Red Social",

		KeyFeed:        "Inicio",
		KeyProfile:     "Perfil",
		KeyAccount:     "Cuenta",
		KeyPreferences: "Preferencias",
		KeyLogout:      "Cerrar sesión",
		KeySearch:      "Buscar publicaciones o personas",

		KeyLogin:              "Iniciar sesión",
		KeyRegister:           "Registrarse",
		KeyEmail:              "Correo electrónico",
		KeyPassword:           "Contraseña",
		KeyConfirmPassword:    "Confirmar contraseña",
		KeyName:               "Nombre",
		KeyNickname:           "Apodo",
		KeyPhone:              "Teléfono (opcional)",
		KeyForgotPassword:     "¿Olvidaste tu contraseña?",
		KeyResetPassword:      "Restablecer contraseña",
		KeyNewPassword:        "Nueva contraseña",
		KeyCheckEmail:         "Verificar correo",
		KeyNoAccountYet:       "¿No tienes cuenta? Regístrate",
		KeyAlreadyRegistered:  "¿Ya tienes cuenta? Inicia sesión",
		KeyBackToLogin:        "Volver al inicio de sesión",
		KeyAccountCreated:     "Cuenta creada, ya puedes iniciar sesión",
		KeyPasswordUpdated:    "Contraseña actualizada, inicia sesión con la nueva",
		KeyInvalidCredentials: "Correo o contraseña incorrectos",
		KeyEmailTaken:         "Ese correo ya está registrado",
		KeyNicknameTaken:      "Ese apodo ya está en uso",
		KeyUserExists:         "Ya existe un usuario con ese correo o apodo",
		KeyEmailNotFound:      "No hay ninguna cuenta con ese correo",

		KeyComposePlaceholder: "¿Qué estás pensando?",
		KeyPublish:            "Publicar",
		KeyRetry:              "Reintentar",
		KeyLoadingFeed:        "Cargando publicaciones...",
		KeyFeedEmpty:          "Aún no hay nada. ¡Sé el primero en publicar!",
		KeyFeedFailed:         "No se pudo cargar el inicio",
		KeyNoResults:          "Ninguna publicación coincide con tu búsqueda",

		KeyLike:              "Me gusta",
		KeyReact:             "Reaccionar",
		KeyEdit:              "Editar",
		KeyDelete:            "Eliminar",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeyAttachImage:       "Adjuntar imagen",
		KeyRemoveImage:       "Quitar imagen",
		KeyConfirmDeletePost: "¿Eliminar esta publicación? No se puede deshacer.",

		KeyMemberSince:  "Miembro desde",
		KeyViews:        "Visualizaciones",
		KeyPosts:        "Publicaciones",
		KeyUsersSection: "Miembros de la comunidad",
		KeyDescription:  "Descripción",

		KeyUploadAvatar:         "Cambiar avatar",
		KeySaveChanges:          "Guardar cambios",
		KeyProfileUpdated:       "Perfil actualizado",
		KeyDeleteAccount:        "Eliminar cuenta",
		KeyConfirmDeleteAccount: "¿Eliminar tu cuenta y todas tus publicaciones? No se puede deshacer.",

		KeyBackendURL:          "URL del servidor",
		KeyRequestTimeout:      "Tiempo de espera (segundos)",
		KeyLanguage:            "Idioma",
		KeyShuffleFeed:         "Mezclar el orden del inicio",
		KeyConfirmBeforeDelete: "Preguntar antes de eliminar",
		KeySettingsSaved:       "¡Configuración guardada correctamente!",

		KeyGenericError: "Algo salió mal, inténtalo de nuevo",
	}
}
