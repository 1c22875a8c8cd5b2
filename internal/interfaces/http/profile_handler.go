package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ProfileHandler administración de usuarios y perfiles.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// List godoc
// @Summary      Listar perfiles
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        role        query  string  false  "vendedor | gerente | administrador"
// @Param        active      query  bool    false  "Filtrar por estado"
// @Param        department  query  string  false  "Departamento"
// @Param        q           query  string  false  "Buscar por usuario, email o departamento"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.StaffListResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	var q dto.ProfileListQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario con perfil
// @Tags         profiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStaffRequest  true  "Usuario y perfil"
// @Success      201   {object}  dto.StaffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateStaff(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar perfil
// @Description  Cambia rol, estado, teléfono o departamento. La fecha de contratación no es editable.
// @Tags         profiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Param        body     body  dto.UpdateProfileRequest  true  "Cambios"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/profiles/{user_id} [patch]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Description  Su perfil se elimina en cascada.
// @Tags         profiles
// @Security     Bearer
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{user_id} [delete]
func (h *ProfileHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteUser(c.UserContext(), GetUserID(c), userID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
