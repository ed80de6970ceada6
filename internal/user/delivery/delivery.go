package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
	"github.com/ofarias/inventario-api/internal/user/usecase"
)

var allowedMethods = []string{"GET", "POST", "PUT", "DELETE"}

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.All("/users", d.handle)
	router.All("/users/:id", d.handle)
}

// handle routes on the HTTP method itself so unsupported verbs get the JSON
// 405 body instead of the framework default.
func (d *Delivery) handle(ctx *fiber.Ctx) error {
	method := ctx.Method()
	d.logger.Info("procesando petición", slog.String("method", method), slog.String("path", ctx.Path()))

	// A present but broken body fails before any routing, whatever the verb.
	if raw := bytes.TrimSpace(ctx.Body()); len(raw) > 0 {
		var probe any
		if err := json.Unmarshal(raw, &probe); err != nil {
			d.logger.Error("JSON inválido", slog.Any("error", err))
			return d.invalidJSON(ctx, err)
		}
	}

	switch method {
	case fiber.MethodGet:
		return d.handleGet(ctx)
	case fiber.MethodPost:
		return d.handlePost(ctx)
	case fiber.MethodPut:
		return d.handlePut(ctx)
	case fiber.MethodDelete:
		return d.handleDelete(ctx)
	default:
		d.logger.Warn("método no permitido", slog.String("method", method))
		return respond(ctx, fiber.StatusMethodNotAllowed, ErrorResponse{
			Message:        fmt.Sprintf("Método %s no permitido", method),
			AllowedMethods: allowedMethods,
		})
	}
}

func (d *Delivery) handleGet(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	if idParam == "" {
		users, err := d.useCase.List(ctx.Context())
		if err != nil {
			return d.internalError(ctx, "Error accediendo a la base de datos", err)
		}

		dtos := make([]UserDTO, 0, len(users))
		for _, user := range users {
			dtos = append(dtos, NewUserDTO(user))
		}

		return respond(ctx, fiber.StatusOK, ListResponse{
			Success: true,
			Data:    dtos,
			Count:   len(dtos),
			Message: fmt.Sprintf("Se encontraron %d usuarios", len(dtos)),
		})
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		return d.invalidID(ctx, idParam)
	}

	user, err := d.useCase.GetByID(ctx.Context(), id)
	if errors.Is(err, pkgErrors.ErrUserNotFound) {
		return d.userNotFound(ctx, id)
	} else if err != nil {
		return d.internalError(ctx, "Error accediendo a la base de datos", err)
	}

	return respond(ctx, fiber.StatusOK, UserResponse{
		Success: true,
		Data:    NewUserDTO(user),
		Message: fmt.Sprintf("Usuario con ID %d encontrado", id),
	})
}

func (d *Delivery) handlePost(ctx *fiber.Ctx) error {
	var dto CreateUserDTO
	present, err := parseBody(ctx, &dto)
	if err != nil {
		return d.invalidJSON(ctx, err)
	}
	if !present {
		return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
			Message:        "Se requieren datos del usuario",
			RequiredFields: []string{"name", "email"},
		})
	}

	user, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		Name:  dto.Name,
		Email: dto.Email,
		Role:  dto.Role,
	})

	var verr *pkgErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		return d.validationFailed(ctx, verr)
	case errors.Is(err, pkgErrors.ErrEmailExists):
		return respond(ctx, fiber.StatusConflict, ErrorResponse{
			Message: "Ya existe un usuario con ese email",
			Email:   dto.Email,
		})
	case err != nil:
		return d.internalError(ctx, "Error guardando en la base de datos", err)
	}

	return respond(ctx, fiber.StatusCreated, CreatedResponse{
		Success: true,
		Message: fmt.Sprintf("Usuario '%s' creado exitosamente", user.Name),
		Data:    NewUserDTO(user),
	})
}

func (d *Delivery) handlePut(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	if idParam == "" {
		return d.missingID(ctx)
	}

	var dto UpdateUserDTO
	present, err := parseBody(ctx, &dto)
	if err != nil {
		return d.invalidJSON(ctx, err)
	}
	if !present {
		return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
			Message:       "Se requieren datos para actualizar",
			AllowedFields: []string{"name", "email", "role"},
		})
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		return d.invalidID(ctx, idParam)
	}

	user, err := d.useCase.Update(ctx.Context(), id, usecase.UpdateParams{
		Name:  dto.Name,
		Email: dto.Email,
		Role:  dto.Role,
	})

	var verr *pkgErrors.ValidationError
	switch {
	case errors.Is(err, pkgErrors.ErrUserNotFound):
		return d.userNotFound(ctx, id)
	case errors.As(err, &verr):
		return d.validationFailed(ctx, verr)
	case errors.Is(err, pkgErrors.ErrNoFieldsToUpdate):
		return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
			Message: "No se proporcionaron campos válidos para actualizar",
		})
	case err != nil:
		return d.internalError(ctx, "Error actualizando en la base de datos", err)
	}

	return respond(ctx, fiber.StatusOK, UserResponse{
		Success: true,
		Data:    NewUserDTO(user),
		Message: fmt.Sprintf("Usuario '%s' actualizado exitosamente", user.Name),
	})
}

func (d *Delivery) handleDelete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	if idParam == "" {
		return d.missingID(ctx)
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		return d.invalidID(ctx, idParam)
	}

	user, err := d.useCase.Delete(ctx.Context(), id)
	if errors.Is(err, pkgErrors.ErrUserNotFound) {
		return d.userNotFound(ctx, id)
	} else if err != nil {
		return d.internalError(ctx, "Error eliminando de la base de datos", err)
	}

	return respond(ctx, fiber.StatusOK, DeleteResponse{
		Success: true,
		Message: fmt.Sprintf("Usuario '%s' eliminado exitosamente", user.Name),
		DeletedUser: DeletedUserDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func (d *Delivery) invalidJSON(ctx *fiber.Ctx, err error) error {
	return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
		Message: "JSON inválido en el cuerpo de la petición",
		Error:   err.Error(),
	})
}

func (d *Delivery) invalidID(ctx *fiber.Ctx, received string) error {
	return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
		Message:  "El ID del usuario debe ser un número entero",
		Received: received,
	})
}

func (d *Delivery) missingID(ctx *fiber.Ctx) error {
	return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
		Message: "Se requiere el ID del usuario en la URL",
		Format:  "/users/{id}",
	})
}

func (d *Delivery) userNotFound(ctx *fiber.Ctx, id int) error {
	d.logger.Warn("usuario no encontrado", slog.Int("id", id))
	return respond(ctx, fiber.StatusNotFound, ErrorResponse{
		Message: fmt.Sprintf("Usuario con ID %d no existe", id),
	})
}

func (d *Delivery) validationFailed(ctx *fiber.Ctx, verr *pkgErrors.ValidationError) error {
	return respond(ctx, fiber.StatusBadRequest, ErrorResponse{
		Message: "Errores de validación",
		Errors:  verr.Errors,
	})
}

func (d *Delivery) internalError(ctx *fiber.Ctx, message string, err error) error {
	d.logger.Error(message, slog.Any("error", err))
	return respond(ctx, fiber.StatusInternalServerError, ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
