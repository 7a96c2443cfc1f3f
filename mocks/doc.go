package mocks

//go:generate mockgen -destination=transport.go -package=mocks github.com/xy-planning-network/tlog/logger Transport
