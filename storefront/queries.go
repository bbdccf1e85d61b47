package storefront

// GraphQL documents for the Storefront API. The schema is owned by the
// commerce platform; queries ask only for the fields this service maps.

const productFragment = `
fragment ProductFragment on Product {
  id
  title
  handle
  description
  descriptionHtml
  availableForSale
  productType
  vendor
  tags
  options {
    id
    name
    values
  }
  priceRange {
    minVariantPrice { amount currencyCode }
    maxVariantPrice { amount currencyCode }
  }
  compareAtPriceRange {
    minVariantPrice { amount currencyCode }
    maxVariantPrice { amount currencyCode }
  }
  redirect: metafield(namespace: "custom", key: "redirect") {
    value
  }
  assemblyInstructions: metafield(namespace: "custom", key: "assembly_instructions") {
    references(first: 10) {
      nodes {
        ... on Metaobject {
          fields {
            key
            value
            reference {
              ... on GenericFile { url }
            }
          }
        }
      }
    }
  }
  images(first: 50) {
    edges {
      node { id url altText width height }
    }
  }
  variants(first: 100) {
    edges {
      node {
        id
        title
        availableForSale
        quantityAvailable
        sku
        selectedOptions { name value }
        price { amount currencyCode }
        compareAtPrice { amount currencyCode }
        image { id url altText width height }
        material: metafield(namespace: "my_fields", key: "material") { value }
        variantColor: metafield(namespace: "my_fields", key: "color") { value }
        finish: metafield(namespace: "my_fields", key: "finish") { value }
        height: metafield(namespace: "my_fields", key: "height") { value }
        width: metafield(namespace: "my_fields", key: "width") { value }
        depth: metafield(namespace: "my_fields", key: "depth") { value }
        internalHeight: metafield(namespace: "my_fields", key: "internal_height") { value }
        internalWidth: metafield(namespace: "my_fields", key: "internal_width") { value }
        hangingSpace: metafield(namespace: "my_fields", key: "hanging_space") { value }
        shelfSpace: metafield(namespace: "my_fields", key: "shelf_space") { value }
        mountType: metafield(namespace: "my_fields", key: "mount_type") { value }
        numberOfRods: metafield(namespace: "my_fields", key: "number_of_rods") { value }
        numberOfFixedShelves: metafield(namespace: "my_fields", key: "number_of_fixed_shelves") { value }
        numberOfAdjustableShelves: metafield(namespace: "my_fields", key: "number_of_adjustable_shelves") { value }
        numberOfDrawers: metafield(namespace: "my_fields", key: "number_of_drawers") { value }
        totalWeightCapacity: metafield(namespace: "my_fields", key: "total_weight_capacity_lbs_") { value }
        hardwareIncluded: metafield(namespace: "my_fields", key: "hardware_included") { value }
        closetAddOns: metafield(namespace: "custom", key: "closet_add_ons_v4") {
          reference {
            ... on Metaobject {
              fields {
                key
                value
                references(first: 10) {
                  nodes {
                    ... on ProductVariant {
                      id
                      title
                      availableForSale
                      price { amount currencyCode }
                      image { url altText }
                      product { id title handle description }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}
`

const productCardFragment = `
fragment ProductCardFragment on Product {
  id
  title
  handle
  availableForSale
  priceRange {
    minVariantPrice { amount currencyCode }
  }
  compareAtPriceRange {
    minVariantPrice { amount currencyCode }
  }
  images(first: 2) {
    edges {
      node { id url altText width height }
    }
  }
}
`

const QueryProductByHandle = productFragment + `
query GetProductByHandle($handle: String!) {
  product(handle: $handle) {
    ...ProductFragment
  }
}
`

const QueryCollectionWithProducts = productCardFragment + `
query GetCollectionProducts(
  $handle: String!
  $first: Int!
  $after: String
  $sortKey: ProductCollectionSortKeys
  $reverse: Boolean
) {
  collection(handle: $handle) {
    id
    title
    handle
    description
    descriptionHtml
    image { id url altText width height }
    products(first: $first, after: $after, sortKey: $sortKey, reverse: $reverse) {
      pageInfo { hasNextPage endCursor }
      edges {
        cursor
        node { ...ProductCardFragment }
      }
    }
  }
}
`

const QueryPredictiveSearch = `
query PredictiveSearch($query: String!, $limit: Int!) {
  predictiveSearch(query: $query, limit: $limit, types: [PRODUCT, COLLECTION]) {
    products {
      id
      title
      handle
      availableForSale
      featuredImage { url altText }
      priceRange { minVariantPrice { amount currencyCode } }
      compareAtPriceRange { minVariantPrice { amount currencyCode } }
    }
    collections {
      id
      title
      handle
      image { url altText }
    }
  }
}
`

const QuerySearchProducts = `
query SearchProducts($query: String!, $first: Int!, $after: String) {
  search(query: $query, first: $first, after: $after, types: [PRODUCT]) {
    totalCount
    edges {
      cursor
      node {
        ... on Product {
          id
          title
          handle
          availableForSale
          featuredImage { url altText }
          priceRange { minVariantPrice { amount currencyCode } }
          compareAtPriceRange { minVariantPrice { amount currencyCode } }
          images(first: 2) {
            edges {
              node { id url altText width height }
            }
          }
        }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}
`

const QueryFAQs = `
query GetFAQs {
  metaobjects(type: "frequently_asked_questions", first: 50) {
    nodes {
      id
      fields { key value }
    }
  }
}
`

const QueryGalleryImages = `
query GetGalleryImages($type: String!, $first: Int!, $after: String) {
  metaobjects(type: $type, first: $first, after: $after, sortKey: "updated_at", reverse: true) {
    edges {
      cursor
      node {
        id
        fields {
          key
          value
          reference {
            __typename
            ... on MediaImage {
              image {
                small: url(transform: { maxWidth: 960 })
                full: url(transform: { maxWidth: 2048 })
                altText
                width
                height
              }
            }
          }
        }
      }
    }
    pageInfo { hasNextPage }
  }
}
`

const QueryMegamenu = `
query GetMegamenu {
  metaobjects(type: "megamenu", first: 20) {
    nodes {
      id
      handle
      fields {
        key
        value
        reference {
          ... on MediaImage {
            image { url altText width height }
          }
        }
      }
    }
  }
}
`

const QueryTrustpilotReviews = `
query GetTrustpilotReviews {
  heading: metaobject(handle: { handle: "excellent", type: "trustpilot_reviews_heading" }) {
    fields { key value }
  }
  reviews: metaobjects(type: "trustpilot_reviews", first: 50) {
    nodes {
      fields { key value }
    }
  }
}
`

const QueryLightboxComparison = `
query GetLightboxComparison {
  metaobjects(type: "lightbox", first: 50) {
    nodes {
      id
      fields { key value }
    }
  }
}
`

const QueryCustomerClosets = `
query GetCustomerClosets {
  metaobjects(type: "real_customer_closets", first: 20) {
    nodes {
      id
      fields {
        key
        value
        reference {
          __typename
          ... on MediaImage {
            image {
              url(transform: { maxWidth: 800 })
              altText
              width
              height
            }
          }
          ... on Video {
            sources { url mimeType }
            previewImage { url }
          }
        }
      }
    }
  }
}
`

const cartFragment = `
fragment CartFragment on Cart {
  id
  checkoutUrl
  totalQuantity
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            sku
            image { url altText width height }
            price { amount currencyCode }
            product { id title handle }
            selectedOptions { name value }
          }
        }
      }
    }
  }
}
`

const MutationCartCreate = cartFragment + `
mutation CreateCart($input: CartInput) {
  cartCreate(input: $input) {
    cart { ...CartFragment }
    userErrors { field message }
  }
}
`

const MutationCartLinesAdd = cartFragment + `
mutation AddToCart($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { ...CartFragment }
    userErrors { field message }
  }
}
`

const MutationCartLinesUpdate = cartFragment + `
mutation UpdateCartLines($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart { ...CartFragment }
    userErrors { field message }
  }
}
`

const MutationCartLinesRemove = cartFragment + `
mutation RemoveFromCart($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart { ...CartFragment }
    userErrors { field message }
  }
}
`

const QueryCart = cartFragment + `
query GetCart($cartId: ID!) {
  cart(id: $cartId) {
    ...CartFragment
  }
}
`
