package catalog

// Technology categories
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryDatabase  = "database"
	CategoryCloud     = "cloud_devops"
	CategoryData      = "data"
	CategoryMobile    = "mobile"
	CategoryTesting   = "testing"
	CategoryConcept   = "concept"
	CategoryTooling   = "tooling"
)

//nolint:gochecknoglobals // immutable taxonomy, indexed once by Default
var defaultGroups = []TechnologyGroup{
	// Languages
	{PrimaryName: "javascript", RelatedNames: []string{"typescript", "node.js", "deno"}, Category: CategoryLanguage, CompensationFactor: 0.85, ContextTags: []string{"web", "frontend", "backend"}},
	{PrimaryName: "python", RelatedNames: []string{"cython"}, Category: CategoryLanguage, CompensationFactor: 0.9, ContextTags: []string{"backend", "data", "scripting"}},
	{PrimaryName: "java", RelatedNames: []string{"kotlin", "scala", "groovy"}, Category: CategoryLanguage, CompensationFactor: 0.75, ContextTags: []string{"backend", "jvm"}},
	{PrimaryName: "c#", RelatedNames: []string{".net", "asp.net", "f#"}, Category: CategoryLanguage, CompensationFactor: 0.8, ContextTags: []string{"backend", "microsoft"}},
	{PrimaryName: "c++", RelatedNames: []string{"c", "rust"}, Category: CategoryLanguage, CompensationFactor: 0.7, ContextTags: []string{"systems"}},
	{PrimaryName: "go", Category: CategoryLanguage, CompensationFactor: 0.8, ContextTags: []string{"backend", "systems", "cloud"}},
	{PrimaryName: "ruby", RelatedNames: []string{"rails"}, Category: CategoryLanguage, CompensationFactor: 0.8, ContextTags: []string{"backend", "web"}},
	{PrimaryName: "php", RelatedNames: []string{"laravel", "symfony"}, Category: CategoryLanguage, CompensationFactor: 0.75, ContextTags: []string{"backend", "web"}},
	{PrimaryName: "swift", RelatedNames: []string{"objective-c", "ios"}, Category: CategoryMobile, CompensationFactor: 0.8, ContextTags: []string{"mobile", "apple"}},

	// Frameworks
	{PrimaryName: "react", RelatedNames: []string{"vue", "angular", "svelte", "next.js", "nuxt"}, Category: CategoryFramework, CompensationFactor: 0.75, ContextTags: []string{"frontend", "web"}},
	{PrimaryName: "django", RelatedNames: []string{"flask", "fastapi"}, Category: CategoryFramework, CompensationFactor: 0.8, ContextTags: []string{"backend", "python"}},
	{PrimaryName: "spring", RelatedNames: []string{"spring boot", "hibernate"}, Category: CategoryFramework, CompensationFactor: 0.8, ContextTags: []string{"backend", "jvm"}},
	{PrimaryName: "express", RelatedNames: []string{"nestjs", "koa", "fastify"}, Category: CategoryFramework, CompensationFactor: 0.8, ContextTags: []string{"backend", "node"}},

	// Databases
	{PrimaryName: "sql", RelatedNames: []string{"postgresql", "mysql", "sqlite", "mariadb", "sql server", "oracle"}, Category: CategoryDatabase, CompensationFactor: 0.85, ContextTags: []string{"data", "backend"}},
	{PrimaryName: "mongodb", RelatedNames: []string{"cassandra", "dynamodb", "couchdb"}, Category: CategoryDatabase, CompensationFactor: 0.7, ContextTags: []string{"data", "nosql"}},
	{PrimaryName: "redis", RelatedNames: []string{"memcached"}, Category: CategoryDatabase, CompensationFactor: 0.8, ContextTags: []string{"caching"}},
	{PrimaryName: "elasticsearch", RelatedNames: []string{"opensearch", "solr"}, Category: CategoryDatabase, CompensationFactor: 0.8, ContextTags: []string{"search"}},

	// Cloud and DevOps
	{PrimaryName: "aws", RelatedNames: []string{"azure", "gcp"}, Category: CategoryCloud, CompensationFactor: 0.7, ContextTags: []string{"cloud"}},
	{PrimaryName: "docker", RelatedNames: []string{"podman", "containerd"}, Category: CategoryCloud, CompensationFactor: 0.8, ContextTags: []string{"containers"}},
	{PrimaryName: "kubernetes", RelatedNames: []string{"openshift", "helm", "nomad"}, Category: CategoryCloud, CompensationFactor: 0.75, ContextTags: []string{"containers", "orchestration"}},
	{PrimaryName: "terraform", RelatedNames: []string{"pulumi", "cloudformation", "ansible"}, Category: CategoryCloud, CompensationFactor: 0.7, ContextTags: []string{"infrastructure"}},
	{PrimaryName: "ci/cd", RelatedNames: []string{"jenkins", "github actions", "gitlab ci", "circleci"}, Category: CategoryCloud, CompensationFactor: 0.8, ContextTags: []string{"delivery"}},
	{PrimaryName: "linux", RelatedNames: []string{"unix", "bash"}, Category: CategoryCloud, CompensationFactor: 0.8, ContextTags: []string{"systems"}},
	{PrimaryName: "kafka", RelatedNames: []string{"rabbitmq", "nats", "sqs"}, Category: CategoryCloud, CompensationFactor: 0.75, ContextTags: []string{"messaging"}},

	// Data and ML
	{PrimaryName: "machine learning", RelatedNames: []string{"tensorflow", "pytorch", "scikit-learn", "keras"}, Category: CategoryData, CompensationFactor: 0.7, ContextTags: []string{"ml", "data"}},
	{PrimaryName: "pandas", RelatedNames: []string{"numpy", "scipy"}, Category: CategoryData, CompensationFactor: 0.8, ContextTags: []string{"data", "python"}},
	{PrimaryName: "spark", RelatedNames: []string{"hadoop", "airflow", "databricks"}, Category: CategoryData, CompensationFactor: 0.7, ContextTags: []string{"data", "big data"}},

	// Mobile
	{PrimaryName: "android", RelatedNames: []string{"flutter", "react native"}, Category: CategoryMobile, CompensationFactor: 0.7, ContextTags: []string{"mobile"}},

	// Testing
	{PrimaryName: "jest", RelatedNames: []string{"mocha", "cypress", "selenium", "playwright"}, Category: CategoryTesting, CompensationFactor: 0.7, ContextTags: []string{"testing", "frontend"}},
	{PrimaryName: "pytest", RelatedNames: []string{"junit", "unittest"}, Category: CategoryTesting, CompensationFactor: 0.7, ContextTags: []string{"testing"}},

	// Concepts and APIs
	{PrimaryName: "rest", RelatedNames: []string{"graphql", "grpc"}, Category: CategoryConcept, CompensationFactor: 0.75, ContextTags: []string{"api"}},
	{PrimaryName: "microservices", RelatedNames: []string{"distributed systems", "event-driven architecture"}, Category: CategoryConcept, CompensationFactor: 0.7, ContextTags: []string{"architecture"}},

	// Tooling
	{PrimaryName: "git", RelatedNames: []string{"github", "gitlab", "bitbucket"}, Category: CategoryTooling, CompensationFactor: 0.9, ContextTags: []string{"vcs"}},
}
