//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

type producer interface {
	SendMessage(topic string, key string, value []byte) error
}
