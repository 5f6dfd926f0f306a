// token emite un JWT firmado con JWT_SECRET para operar las rutas de escritura.
//
// Uso: go run ./cmd/token -sub operador -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/translatable-api/pkg/config"
	"github.com/jhoicas/translatable-api/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "operador", "sujeto del token")
	role := flag.String("role", "editor", "rol: admin | editor")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if *exp <= 0 {
		*exp = cfg.JWT.Expiration
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, *exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
