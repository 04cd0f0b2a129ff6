package handlers

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE github.com/ArowuTest/raffle-backend/internal/services RaffleService,PayoutService,AuthService
