// Package docs provides generated OpenAPI documentation.
//
// Coffee Quest API
//
//	@title			Coffee Quest API
//	@version		1.0
//	@description	Personalized daily coffee quests: LLM-generated narrative, challenge, reward and progress per customer, with brand configuration and campaign assets.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jackzampolin/coffeequest
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:5001
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/coffeequest/serve.go -o ./swagger --parseDependency --parseInternal
