package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"escapade/cmd/fx/account_fx"
	"escapade/cmd/fx/activity_fx"
	"escapade/cmd/fx/ai_fx"
	"escapade/cmd/fx/catalog_fx"
	"escapade/cmd/fx/controllers_fx"
	"escapade/cmd/fx/db_fx"
	"escapade/cmd/fx/destination_fx"
	"escapade/cmd/fx/favorite_fx"
	"escapade/cmd/fx/memcache_fx"
	"escapade/cmd/fx/quiz_fx"
	"escapade/cmd/fx/rating_fx"
	"escapade/cmd/fx/recommendation_fx"
	"escapade/internal/api/controllers"
	"escapade/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		activity_fx.Module,
		quiz_fx.Module,
		recommendation_fx.Module,
		favorite_fx.Module,
		rating_fx.Module,
		destination_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	activityController *controllers.ActivityController,
	quizController *controllers.QuizController,
	recommendationController *controllers.RecommendationController,
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	ratingController *controllers.RatingController,
	reviewController *controllers.ReviewController,
	destinationController *controllers.DestinationController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		activityController,
		quizController,
		recommendationController,
		accountController,
		favoriteController,
		ratingController,
		reviewController,
		destinationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	activityController *controllers.ActivityController,
	quizController *controllers.QuizController,
	recommendationController *controllers.RecommendationController,
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	ratingController *controllers.RatingController,
	reviewController *controllers.ReviewController,
	destinationController *controllers.DestinationController) {

	activities := r.Group("/activities")
	activities.GET("", activityController.ListActivities)
	activities.GET("/:id", activityController.GetActivity)
	activities.GET("/:id/similar", recommendationController.SimilarActivities)
	activities.GET("/:id/ratings", ratingController.ListRatings)
	activities.GET("/:id/ratings/summary", ratingController.RatingSummary)
	activities.GET("/:id/reviews", reviewController.ListReviews)

	locations := r.Group("/locations")
	locations.GET("/countries", activityController.ListCountries)
	locations.GET("/countries/:country/cities", activityController.ListCities)

	quiz := r.Group("/quiz")
	quiz.POST("/start", quizController.StartSession)
	quiz.GET("/questions", quizController.GetQuestions)
	quiz.POST("/answer", quizController.SubmitAnswer)
	quiz.POST("/reset", quizController.ResetSession)
	quiz.POST("/match", quizController.Match)
	quiz.POST("/recommendations", recommendationController.Recommend)

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.PUT("/profile", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	favorites.GET("", favoriteController.ListFavorites)
	favorites.POST("", favoriteController.AddFavorite)
	favorites.DELETE("/:activityId", favoriteController.RemoveFavorite)
	favorites.GET("/:activityId/status", favoriteController.FavoriteStatus)

	ratings := r.Group("/ratings", middleware.JWTAuthMiddleware())
	ratings.POST("", ratingController.SubmitRating)

	reviews := r.Group("/reviews", middleware.JWTAuthMiddleware())
	reviews.POST("", reviewController.SubmitReview)

	destinations := r.Group("/destinations")
	destinations.GET("", destinationController.ListDestinations)
	destinations.GET("/:id", destinationController.GetDestination)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/embeddings/reindex", recommendationController.ReindexEmbeddings)
}
