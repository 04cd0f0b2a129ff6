package services

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . UpkeepPerformer
