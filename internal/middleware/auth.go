package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

// WalletHeader porte l'adresse du wallet connecté côté client. Le backend
// la traite comme un identifiant opaque: aucune signature n'est vérifiée.
const WalletHeader = "X-Wallet-Address"

// ErrAuthRequired indicates no wallet address accompanied the request.
var ErrAuthRequired = errors.New("wallet not connected")

// Context keys
type contextKey string

const walletContextKey = contextKey("wallet")

// WalletAuth exige une adresse de wallet et l'injecte dans le contexte.
// Sans adresse, la commande est rejetée ("please connect your wallet").
func WalletAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet := strings.TrimSpace(r.Header.Get(WalletHeader))
		if wallet == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "please connect your wallet first")
			return
		}

		ctx := context.WithValue(r.Context(), walletContextKey, wallet)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalWallet injecte l'adresse si elle est présente, sans jamais
// rejeter la requête. Utilisé sur les routes de lecture.
func OptionalWallet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet := strings.TrimSpace(r.Header.Get(WalletHeader))
		if wallet != "" {
			ctx := context.WithValue(r.Context(), walletContextKey, wallet)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetWalletFromContext récupère l'adresse du wallet depuis le contexte
func GetWalletFromContext(r *http.Request) (string, error) {
	wallet, ok := r.Context().Value(walletContextKey).(string)
	if !ok || wallet == "" {
		return "", ErrAuthRequired
	}
	return wallet, nil
}
