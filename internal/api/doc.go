// Package api handles incoming HTTP requests, request validation, and
// response formatting for the accounts service. It acts as an adapter
// between external clients and the accounts service, translating HTTP
// concerns to business operations and service failures to status codes.
package api
