package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name KeyValueStore --dir ../domain/storage --output domain/storage --outpkg storagemock --filename key_value_store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BlobStore --dir ../domain/storage --output domain/storage --outpkg storagemock --filename blob_store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Persister --dir ../domain/storage --output domain/storage --outpkg storagemock --filename persister_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/playerstats --output domain/playerstats --outpkg playerstatsmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name AverageProvider --dir ../domain/playerstats --output domain/playerstats --outpkg playerstatsmock --filename average_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ProSource --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename pro_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CollegiateSource --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename collegiate_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/defense --output domain/defense --outpkg defensemock --filename source_mock.go
