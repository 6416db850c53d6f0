package services

import (
	"signup/internal/app/deps"
	"signup/internal/core/domain/feedback"
	drl "signup/internal/core/domain/rate_limiter"
	"signup/internal/core/services"
	ratelimiting "signup/internal/core/services/rate_limiting"
	registeraccount "signup/internal/core/services/register_account"
	signup "signup/internal/core/services/sign_up"
)

type Services struct {
	RegisterAccount services.Service[registeraccount.Input, registeraccount.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		RegisterAccount: ratelimiting.New(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Minute, Value: deps.Config.DevRateLimit},
			registeraccount.New(deps.Logger, deps.EmailRegistry),
		),
	}
}

// InitSignUp builds the registration flow on top of the given front end.
// Sign up is built per front end because its collaborators are.
func InitSignUp(
	deps *deps.Deps,
	form feedback.FormState,
	sink feedback.NotificationSink,
	navigator feedback.Navigator,
) services.Service[signup.Input, signup.Result] {
	return signup.WithSingleSubmission(
		deps.Logger,
		signup.New(
			deps.Logger,
			deps.AccountCreator,
			feedback.NewAdapter(form, sink),
			navigator,
			deps.Config.EntryRoute,
		),
	)
}
