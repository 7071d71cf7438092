package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/allisson/piiguard/internal/user/usecase"
)

// CreateUserParams are the create-user flags.
type CreateUserParams struct {
	ID       string
	Email    string
	FullName string
	Role     string
	Password string
	Format   string
}

// RunCreateUser creates an account without going through the API, typically the
// first admin. An empty password is read from the IOTuple reader. Output is masked
// the same way API responses are.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	params CreateUserParams,
	streams IOTuple,
) error {
	password := params.Password
	if password == "" {
		_, _ = fmt.Fprint(streams.Writer, "Password: ")
		line, err := readLine(streams.Reader)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(streams.Writer)
		password = line
	}

	view, err := useCase.Create(ctx, userUseCase.CreateUserInput{
		ID:       params.ID,
		Email:    params.Email,
		Password: password,
		FullName: params.FullName,
		Role:     params.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created", slog.String("id", view.ID), slog.String("role", view.Role.String()))

	output := map[string]string{
		"id":        view.ID,
		"email":     view.Email,
		"full_name": view.FullName,
		"role":      view.Role.String(),
	}
	return writeOutput(streams.Writer, params.Format, output, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "User created\n")
		_, _ = fmt.Fprintf(w, "  ID:        %s\n", view.ID)
		_, _ = fmt.Fprintf(w, "  Email:     %s\n", view.Email)
		_, _ = fmt.Fprintf(w, "  Full name: %s\n", view.FullName)
		_, _ = fmt.Fprintf(w, "  Role:      %s\n", view.Role)
	})
}
