package domain

import (
	interfaces "loginflow/internal/domain/interfaces"
	types "loginflow/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	StepUpToken         = types.StepUpToken
	CredentialPair      = types.CredentialPair
	User                = types.User
	AccessTokenEnvelope = types.AccessTokenEnvelope
	Session             = types.Session
	Screen              = types.Screen
	StepUpTicket        = types.StepUpTicket
	Route               = types.Route
	Message             = types.Message
	APIError            = types.APIError
	TransportKind       = types.TransportKind
	TransportError      = types.TransportError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthClient      = interfaces.AuthClient
	SessionWriter   = interfaces.SessionWriter
	SessionStore    = interfaces.SessionStore
	View            = interfaces.View
	Navigator       = interfaces.Navigator
	FaultReporter   = interfaces.FaultReporter
	LoginController = interfaces.LoginController
)

const (
	ScreenLogin  = types.ScreenLogin
	ScreenHome   = types.ScreenHome
	ScreenStepUp = types.ScreenStepUp

	MessageInvalidLogin    = types.MessageInvalidLogin
	MessageUnableToConnect = types.MessageUnableToConnect
	MessageUnableToLogin   = types.MessageUnableToLogin
	MessageCodeInvalid     = types.MessageCodeInvalid
	MessageStepUpExpired   = types.MessageStepUpExpired

	KindNetwork    = types.KindNetwork
	KindHTTP       = types.KindHTTP
	KindConversion = types.KindConversion
	KindUnexpected = types.KindUnexpected

	CodeTFARequired       = types.CodeTFARequired
	CodeTFAFailed         = types.CodeTFAFailed
	CodeInvalidXAuthLogin = types.CodeInvalidXAuthLogin
)
