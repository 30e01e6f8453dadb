package services

// ServiceContainer holds the service facades handed to the HTTP layer at
// wiring time.
type ServiceContainer struct {
	Currency CurrencySvcFacade
	Payment  PaymentSvcFacade
}
