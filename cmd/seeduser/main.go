// Comando seeduser crea o actualiza la cuenta inicial de administración.
//
//	seeduser -email demo@innovasport.com -password <pass> [-role admin]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/infrastructure/postgres"
	"github.com/innovasport/almacen-api/pkg/config"
)

func main() {
	email := flag.String("email", "demo@innovasport.com", "email de la cuenta")
	password := flag.String("password", "", "password en claro (se almacena su hash bcrypt)")
	role := flag.String("role", entity.RoleAdmin, "rol: admin, developer, employee o jefe_obra")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "uso: seeduser -email <email> -password <password> [-role <rol>]")
		os.Exit(1)
	}
	if !entity.ValidRole(*role) {
		log.Fatalf("rol no reconocido: %s", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    category = EXCLUDED.category
	`, *email, string(hash), *role)
	if err != nil {
		log.Fatalf("insertar usuario: %v", err)
	}

	fmt.Printf("usuario %q creado/actualizado con rol %q\n", *email, *role)
}
