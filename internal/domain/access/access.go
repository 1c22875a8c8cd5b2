// Package access decide, en cada petición, si la identidad que llama puede
// ejecutar una operación protegida según su perfil y la política de roles.
//
// La decisión se calcula de nuevo en cada llamada leyendo el perfil actual del
// almacenamiento; un cambio de rol aplica desde la siguiente petición.
package access

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Destinos de redirección cuando se deniega el acceso.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Reason motivo de una denegación.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonUnauthenticated  Reason = "not_authenticated"
	ReasonMissingProfile   Reason = "profile_missing"
	ReasonInsufficientRole Reason = "insufficient_role"
)

// Level severidad de una notificación para la interfaz.
type Level string

const (
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Notification mensaje de un solo uso que se muestra en la siguiente página.
type Notification struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Identity identidad autenticada de la petición.
type Identity struct {
	UserID    string
	Username  string
	Superuser bool
}

// ProfileFinder busca el perfil de un usuario. Devuelve (nil, nil) si no existe.
type ProfileFinder interface {
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)
}

// Decision resultado de evaluar el acceso.
type Decision struct {
	Allowed  bool
	Reason   Reason
	Redirect string
	Notice   *Notification
	Profile  *entity.Profile // perfil resuelto; nil para superusuarios y denegaciones sin perfil
}

// Allow decisión afirmativa.
func Allow(profile *entity.Profile) Decision {
	return Decision{Allowed: true, Reason: ReasonNone, Profile: profile}
}

func deny(reason Reason, redirect, text string) Decision {
	return Decision{
		Reason:   reason,
		Redirect: redirect,
		Notice:   &Notification{Level: LevelError, Text: text},
	}
}

// RequireIdentity deniega si la petición no trae identidad autenticada.
func RequireIdentity(id *Identity) Decision {
	if id == nil || id.UserID == "" {
		return deny(ReasonUnauthenticated, LoginPath, "Debes iniciar sesión para acceder")
	}
	return Allow(nil)
}

// Authorize evalúa, en orden: autenticación, superusuario, existencia del perfil
// y pertenencia del rol a allowed. El flag Active del perfil no se evalúa.
// Solo devuelve error si falla la consulta del perfil.
func Authorize(ctx context.Context, id *Identity, allowed RoleSet, profiles ProfileFinder) (Decision, error) {
	if d := RequireIdentity(id); !d.Allowed {
		return d, nil
	}
	if id.Superuser {
		return Allow(nil), nil
	}
	profile, err := profiles.FindByUserID(ctx, id.UserID)
	if err != nil {
		return Decision{}, fmt.Errorf("access: obtener perfil de %s: %w", id.UserID, err)
	}
	if profile == nil {
		return deny(ReasonMissingProfile, HomePath,
			"⚠️ Tu cuenta no tiene un perfil asignado. Contacta al administrador."), nil
	}
	if allowed.Contains(profile.Role) {
		return Allow(profile), nil
	}
	return deny(ReasonInsufficientRole, HomePath,
		"⚠️ Acceso denegado. Se requiere rol: "+allowed.Display()), nil
}
